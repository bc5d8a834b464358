package dashboard

// Greeting returns the salutation for an hour of the day (0-23).
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning ☀️"
	case hour >= 12 && hour < 17:
		return "Good Afternoon 🌤️"
	case hour >= 17 && hour < 21:
		return "Good Evening 🌅"
	default:
		return "Good Night 🌙"
	}
}
