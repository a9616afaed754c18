package models

// TherapistLocation is a practice address with coordinates.
type TherapistLocation struct {
	Address string  `bson:"address" json:"address"`
	City    string  `bson:"city" json:"city"`
	State   string  `bson:"state,omitempty" json:"state,omitempty"`
	Zip     string  `bson:"zip,omitempty" json:"zip,omitempty"`
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
}

type TherapistContact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type TherapistAvailability struct {
	Online    bool     `bson:"online" json:"online"`
	InPerson  bool     `bson:"in_person" json:"in_person"`
	Languages []string `bson:"languages,omitempty" json:"languages,omitempty"`
}

// Therapist is a provider record in the directory. It is read-only input to search.
type Therapist struct {
	ID                string                `bson:"id" json:"id"`
	Name              string                `bson:"name" json:"name" binding:"required"`
	Credentials       string                `bson:"credentials,omitempty" json:"credentials,omitempty"`
	Specialties       []string              `bson:"specialties" json:"specialties"`
	Bio               string                `bson:"bio,omitempty" json:"bio,omitempty"`
	Location          TherapistLocation     `bson:"location" json:"location"`
	Contact           TherapistContact      `bson:"contact" json:"contact"`
	InsuranceAccepted []string              `bson:"insurance_accepted,omitempty" json:"insurance_accepted,omitempty"`
	Rating            float64               `bson:"rating" json:"rating"`
	SessionFee        float64               `bson:"session_fee" json:"session_fee"`
	Availability      TherapistAvailability `bson:"availability" json:"availability"`
}
