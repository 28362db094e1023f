package layouts

// SiteName is appended to every page title.
const SiteName = "React Hook Form"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}
