package therapist

import "soulsync/models"

// specialties are the filter options offered in the directory.
var specialties = []string{
	models.SpecialtyAll, "anxiety", "depression", "trauma", "relationships",
	"addiction", "eating disorders", "adhd", "family therapy", "couples therapy", "stress management",
}

// SampleTherapists is the starter directory used when nothing is stored yet.
func SampleTherapists() []models.Therapist {
	return []models.Therapist{
		{
			Name:        "Dr. Anjali Sharma",
			Credentials: "PhD, Clinical Psychologist (RCI Licensed)",
			Specialties: []string{"anxiety", "depression", "stress management"},
			Bio:         "Specializing in Cognitive Behavioral Therapy (CBT) for young adults. Helps clients navigate academic pressure and career uncertainty.",
			Location: models.TherapistLocation{
				Address: "101, Wellness Clinic, Bandra West",
				City:    "Mumbai",
				State:   "MH",
				Zip:     "400050",
				Lat:     19.0760,
				Lng:     72.8777,
			},
			Contact:           models.TherapistContact{Phone: "+91 98765 43210", Email: "dr.anjali@soulsync.in"},
			InsuranceAccepted: []string{"HDFC Ergo", "ICICI Lombard", "Bajaj Allianz"},
			Rating:            4.9,
			SessionFee:        2500,
			Availability:      models.TherapistAvailability{Online: true, InPerson: true, Languages: []string{"English", "Hindi", "Marathi"}},
		},
		{
			Name:        "Rohan Desai",
			Credentials: "M.Phil, Counseling Psychologist",
			Specialties: []string{"relationships", "family therapy", "addiction"},
			Bio:         "Experienced in helping Gen Z with relationship conflicts and addiction issues using a person-centered approach. 8+ years of practice.",
			Location: models.TherapistLocation{
				Address: "A-23, Mindful Living Center, Koramangala",
				City:    "Bengaluru",
				State:   "KA",
				Zip:     "560034",
				Lat:     12.9279,
				Lng:     77.6271,
			},
			Contact:           models.TherapistContact{Phone: "+91 87654 32109", Email: "rohan.desai@soulsync.in"},
			InsuranceAccepted: []string{"Star Health", "Max Bupa"},
			Rating:            4.8,
			SessionFee:        1800,
			Availability:      models.TherapistAvailability{Online: true, InPerson: true, Languages: []string{"English", "Kannada"}},
		},
		{
			Name:        "Dr. Priya Verma",
			Credentials: "MD, Psychiatrist",
			Specialties: []string{"depression", "adhd", "eating disorders"},
			Bio:         "A psychiatrist with expertise in medication management and therapy for severe depression and ADHD. Focuses on a holistic treatment plan.",
			Location: models.TherapistLocation{
				Address: "Suite 5, Healing Hub, Saket",
				City:    "New Delhi",
				State:   "DL",
				Zip:     "110017",
				Lat:     28.5273,
				Lng:     77.2177,
			},
			Contact:           models.TherapistContact{Phone: "+91 76543 21098", Email: "dr.priya@soulsync.in", Website: "www.drpriyaverma.com"},
			InsuranceAccepted: []string{"Aetna", "Cigna TTK"},
			Rating:            4.9,
			SessionFee:        3000,
			Availability:      models.TherapistAvailability{Online: true, InPerson: true, Languages: []string{"English", "Hindi"}},
		},
	}
}
