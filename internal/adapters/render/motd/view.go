package motd

import "strings"

const DefaultGreeting = "Welcome to the information server."

func renderBanner(greeting string, s styles) string {
	greeting = strings.TrimSpace(greeting)
	if greeting == "" {
		greeting = DefaultGreeting
	}

	return s.banner.Render("* "+greeting+" *") + "\n"
}

// Banner renders greeting boxed in asterisks.
func Banner(greeting string) string {
	return renderBanner(greeting, newStyles())
}
