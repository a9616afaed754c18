package mood

import "soulsync/models"

// cannedResponses holds the fixed reply for each mood that has one.
// Moods missing from this table use defaultResponse.
var cannedResponses = map[models.MoodLabel]models.ResponseBundle{
	models.MoodCrisis: {
		MessageText: `I'm really concerned about you right now, and I want you to know that you're not alone. Your life has value, and there are people who want to help. Please reach out to a professional immediately - they have the training to support you through this.

🚨 **Immediate Help:**
• National Suicide Prevention: 988 (US)
• Crisis Text Line: Text HOME to 741741
• Vandrevala Foundation: 9999 666 555 (India)

Would you like me to help you find more local resources, or would you prefer to talk about what's making you feel this way? I'm here to listen. 💜`,
		IsCrisis: true,
	},
	models.MoodSad: {
		MessageText: `I can hear the sadness in your words, and I want you to know that it's okay to feel this way. Your emotions are valid. 💙

Here are some things that might help:
🎵 **Music Therapy**: I'd love to suggest some uplifting songs - "Here Comes the Sun" by The Beatles or "Good as Hell" by Lizzo can be mood-boosters
✨ **Creative outlet**: Try writing down three small things you're grateful for today
🧘 **Mindfulness**: Take 5 deep breaths with me - in for 4, hold for 4, out for 6

What sounds most appealing to you right now?`,
		MusicSuggestions: []string{"Here Comes the Sun - The Beatles", "Good as Hell - Lizzo", "Happy - Pharrell Williams"},
	},
	models.MoodTired: {
		MessageText: `It sounds like you're feeling drained. Sometimes our souls need rest just as much as our bodies. 😴💜

Let me suggest some gentle ways to recharge:
🎵 **Calming Music**: "Weightless" by Marconi Union or "Clair de Lune" by Debussy
🛁 **Self-care**: A warm bath with calming music or a short meditation
📱 **Digital break**: Maybe 30 minutes away from screens?
☕ **Comfort ritual**: Make your favorite warm drink mindfully

What would help you feel more rested?`,
		MusicSuggestions: []string{"Weightless - Marconi Union", "Clair de Lune - Debussy", "River - Joni Mitchell"},
	},
	models.MoodAnxious: {
		MessageText: `I can sense you're feeling anxious. Let's work through this together - you're stronger than you know. 🌸

Here are some techniques that can help right now:
🎵 **Calming sounds**: "Breathe Me" by Sia or nature sounds like rain/ocean waves
🧘 **Breathing**: Try the 4-7-8 technique - breathe in for 4, hold for 7, out for 8
✍️ **Journaling prompt**: "What's one thing I can control in this situation?"
🎨 **Creative distraction**: Doodle, color, or sketch your feelings

Which of these feels most doable for you?`,
		MusicSuggestions: []string{"Breathe Me - Sia", "The Night We Met - Lord Huron", "Holocene - Bon Iver"},
	},
	models.MoodHappy: {
		MessageText: `I love hearing the positivity in your message! Your joy is contagious. 😊✨

Let's amplify these good vibes:
🎵 **Upbeat music**: "Can't Stop the Feeling" by Justin Timberlake or "Walking on Sunshine" by Katrina and the Waves
📝 **Gratitude journaling**: Write down what's making you happy today
🤝 **Share the joy**: Maybe message a friend or family member to spread the positivity
💃 **Movement**: Dance to your favorite song or take a joyful walk

What's bringing you the most happiness today?`,
		MusicSuggestions: []string{"Can't Stop the Feeling - Justin Timberlake", "Walking on Sunshine - Katrina and the Waves", "Happy - Pharrell Williams"},
	},
}

var defaultResponse = models.ResponseBundle{
	MessageText: `Thanks for sharing with me. I'm here to listen and support you in whatever way feels helpful. 🐼💜

Would you like me to suggest:
🎵 **Music** to match or shift your mood?
✨ **A creative activity** like journaling or drawing?
🧘 **Mindfulness practice** to help you feel more grounded?
📱 **Connection ideas** to reach out to someone you care about?

What sounds most appealing to you right now?`,
}

// WelcomeMessage greets a session that has no history yet.
const WelcomeMessage = "Hey there! I'm Panda, your AI mental health companion from SoulSync. This is a completely safe and private space where you can share anything on your mind. I can help you with mood-adaptive music suggestions, creative activities, mindfulness practices, and gentle guidance. How are you feeling today?"

// TroubleConnectingMessage is sent when the reply pipeline itself fails.
const TroubleConnectingMessage = "I'm having trouble connecting right now, but I'm still here for you. Please try again in a moment. If you're in crisis, please reach out to a professional helpline immediately."

// CannedResponse returns a copy of the fixed bundle for mood.
func CannedResponse(mood models.MoodLabel) models.ResponseBundle {
	b, ok := cannedResponses[mood]
	if !ok {
		b = defaultResponse
	}
	if b.MusicSuggestions != nil {
		b.MusicSuggestions = append([]string(nil), b.MusicSuggestions...)
	}
	return b
}
