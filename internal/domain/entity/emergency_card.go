package entity

// EmergencyCard is the subset of a user's profile that responders need.
type EmergencyCard struct {
	FullName          string                  `json:"full_name"`
	BloodType         *string                 `json:"blood_type"`
	Allergies         []string                `json:"allergies"`
	EmergencyContacts []EmergencyContact      `json:"emergency_contacts"`
	Medicines         []EmergencyCardMedicine `json:"medicines"`
}

// EmergencyCardMedicine is a current medication listed on the card.
type EmergencyCardMedicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// NewEmergencyCard builds the card for user from their medicines.
func NewEmergencyCard(user *User, medicines []*Medicine) *EmergencyCard {
	card := &EmergencyCard{
		FullName:          user.FullName,
		BloodType:         user.BloodType,
		Allergies:         nonNil(user.Allergies),
		EmergencyContacts: nonNil(user.EmergencyContacts),
		Medicines:         make([]EmergencyCardMedicine, 0, len(medicines)),
	}
	for _, m := range medicines {
		card.Medicines = append(card.Medicines, EmergencyCardMedicine{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
		})
	}

	return card
}
