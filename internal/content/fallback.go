package content

// how much of the original prompt survives into the fallback text
const fallbackPromptLength = 100

const fallbackSuffix = "... [Please customize this message to match your voice and add relevant details]"

// synthesizes placeholder text when the AI provider is unavailable, so
// the end user always receives something usable
func fallbackContent(prompt, platform string) string {
	platformText := ""
	if platform != "" {
		platformText = " for " + platform
	}

	runes := []rune(prompt)
	if len(runes) > fallbackPromptLength {
		runes = runes[:fallbackPromptLength]
	}

	return "Here's your post" + platformText + ": " + string(runes) + fallbackSuffix
}
