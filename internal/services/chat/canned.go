// File: internal/services/chat/canned.go
package chat

import "strings"

// cannedReply pairs an English and a Tamil rendering of a static answer.
type cannedReply struct {
	Keywords []string
	English  string
	Tamil    string
}

var cannedReplies = []cannedReply{
	{
		Keywords: []string{"appointment", "book", "schedule", "முன்பதிவு"},
		English: "You can book an appointment from the Appointments page: pick a doctor, " +
			"choose a free time slot, and confirm. You will see the booking under My Appointments.",
		Tamil: "முன்பதிவு பக்கத்தில் மருத்துவரைத் தேர்ந்தெடுத்து, காலி நேரத்தைத் " +
			"தேர்வு செய்து உறுதிப்படுத்தலாம்.",
	},
	{
		Keywords: []string{"emergency", "chest pain", "breathing", "unconscious", "அவசர"},
		English: "If this is a medical emergency, please call your local emergency number " +
			"or go to the nearest emergency department right away. MediBot cannot help with emergencies.",
		Tamil: "இது அவசர நிலை என்றால், உடனடியாக அவசர எண்ணை அழைக்கவும் அல்லது " +
			"அருகிலுள்ள அவசர சிகிச்சைப் பிரிவுக்குச் செல்லவும்.",
	},
	{
		Keywords: []string{"fee", "cost", "price", "payment", "கட்டணம்"},
		English: "Consultation fees are listed on each doctor's profile. " +
			"Payment is collected when the appointment is confirmed.",
		Tamil: "ஆலோசனைக் கட்டணம் ஒவ்வொரு மருத்துவரின் சுயவிவரத்திலும் உள்ளது.",
	},
}

const (
	cannedDefaultEnglish = "I'm having trouble reaching the medical assistant right now. " +
		"Please try again in a moment, or book an appointment with a doctor if your question is urgent."
	cannedDefaultTamil = "மன்னிக்கவும், இப்போது உதவியாளரை அணுக முடியவில்லை. " +
		"சிறிது நேரம் கழித்து மீண்டும் முயற்சிக்கவும்."
)

// CannedResponder is the final fallback tier. It matches fixed keywords
// against the raw user query and always returns a non-empty string.
type CannedResponder struct{}

func NewCannedResponder() *CannedResponder {
	return &CannedResponder{}
}

// Respond never fails. Unknown queries get the bilingual default.
func (c *CannedResponder) Respond(query, language string) string {
	lower := strings.ToLower(query)
	for _, reply := range cannedReplies {
		for _, kw := range reply.Keywords {
			if strings.Contains(lower, kw) {
				if language == "ta" {
					return reply.Tamil
				}
				return reply.English
			}
		}
	}

	if language == "ta" {
		return cannedDefaultTamil + "\n\n" + cannedDefaultEnglish
	}
	return cannedDefaultEnglish + "\n\n" + cannedDefaultTamil
}
