// File: internal/services/triage/table.go
package triage

// The 18 specialization labels doctors register under. The recommender only
// ever emits one of these.
var Specializations = []string{
	"General Medicine",
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Dermatology",
	"Pediatrics",
	"Gynecology",
	"ENT",
	"Ophthalmology",
	"Psychiatry",
	"Pulmonology",
	"Gastroenterology",
	"Nephrology",
	"Urology",
	"Endocrinology",
	"Oncology",
	"Rheumatology",
	"Dentistry",
}

// symptomEntry maps one symptom phrase to a specialization. The slice is
// ordered so tie-breaking in the fallback counter is deterministic. Tamil
// phrases sit next to their English counterparts.
type symptomEntry struct {
	Phrase         string
	Specialization string
}

var symptomTable = []symptomEntry{
	{"chest pain", "Cardiology"},
	{"palpitation", "Cardiology"},
	{"heart", "Cardiology"},
	{"shortness of breath", "Cardiology"},
	{"மார்பு வலி", "Cardiology"},

	{"headache", "Neurology"},
	{"migraine", "Neurology"},
	{"seizure", "Neurology"},
	{"numbness", "Neurology"},
	{"dizziness", "Neurology"},
	{"தலைவலி", "Neurology"},

	{"joint pain", "Orthopedics"},
	{"back pain", "Orthopedics"},
	{"fracture", "Orthopedics"},
	{"knee pain", "Orthopedics"},
	{"மூட்டு வலி", "Orthopedics"},

	{"rash", "Dermatology"},
	{"itching", "Dermatology"},
	{"acne", "Dermatology"},
	{"skin", "Dermatology"},
	{"தோல்", "Dermatology"},

	{"child fever", "Pediatrics"},
	{"baby", "Pediatrics"},
	{"child", "Pediatrics"},
	{"குழந்தை", "Pediatrics"},

	{"pregnancy", "Gynecology"},
	{"period pain", "Gynecology"},
	{"menstrual", "Gynecology"},
	{"கர்ப்பம்", "Gynecology"},

	{"ear pain", "ENT"},
	{"sore throat", "ENT"},
	{"sinus", "ENT"},
	{"hearing", "ENT"},
	{"காது வலி", "ENT"},

	{"eye pain", "Ophthalmology"},
	{"blurred vision", "Ophthalmology"},
	{"red eye", "Ophthalmology"},
	{"கண்", "Ophthalmology"},

	{"anxiety", "Psychiatry"},
	{"depression", "Psychiatry"},
	{"insomnia", "Psychiatry"},
	{"stress", "Psychiatry"},
	{"மன அழுத்தம்", "Psychiatry"},

	{"cough", "Pulmonology"},
	{"wheezing", "Pulmonology"},
	{"asthma", "Pulmonology"},
	{"இருமல்", "Pulmonology"},

	{"stomach pain", "Gastroenterology"},
	{"vomiting", "Gastroenterology"},
	{"diarrhea", "Gastroenterology"},
	{"acidity", "Gastroenterology"},
	{"வயிற்று வலி", "Gastroenterology"},

	{"kidney", "Nephrology"},
	{"swelling in legs", "Nephrology"},
	{"சிறுநீரக", "Nephrology"},

	{"urination", "Urology"},
	{"urinary", "Urology"},
	{"சிறுநீர்", "Urology"},

	{"thyroid", "Endocrinology"},
	{"diabetes", "Endocrinology"},
	{"sugar", "Endocrinology"},
	{"நீரிழிவு", "Endocrinology"},

	{"lump", "Oncology"},
	{"tumor", "Oncology"},
	{"weight loss", "Oncology"},
	{"கட்டி", "Oncology"},

	{"arthritis", "Rheumatology"},
	{"stiffness", "Rheumatology"},
	{"மூட்டு வீக்கம்", "Rheumatology"},

	{"tooth", "Dentistry"},
	{"gum", "Dentistry"},
	{"பல் வலி", "Dentistry"},

	{"fever", "General Medicine"},
	{"cold", "General Medicine"},
	{"fatigue", "General Medicine"},
	{"body pain", "General Medicine"},
	{"காய்ச்சல்", "General Medicine"},
}

// DefaultSpecialization is returned when nothing in the table matches.
const DefaultSpecialization = "General Medicine"
