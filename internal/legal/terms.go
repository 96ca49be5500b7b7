// Package legal holds the static terms of service shown to students.
package legal

// Document is a titled legal text.
type Document struct {
	Title       string    `json:"title"`
	LastUpdated string    `json:"lastUpdated"`
	Sections    []Section `json:"sections"`
}

// Section is a numbered heading with body text. Bullets follow the
// paragraphs, subsections follow the bullets.
type Section struct {
	Heading     string    `json:"heading"`
	Paragraphs  []string  `json:"paragraphs,omitempty"`
	Bullets     []string  `json:"bullets,omitempty"`
	Subsections []Section `json:"subsections,omitempty"`
}

const (
	TermsTitle       = "Terms of Service"
	TermsLastUpdated = "January 15, 2025"
	ContactEmail     = "support@kryva.app"
)

// Terms returns the terms of service. Each call returns a fresh copy.
func Terms() Document {
	return Document{
		Title:       TermsTitle,
		LastUpdated: TermsLastUpdated,
		Sections: []Section{
			{
				Heading: "1. Acceptance of Terms",
				Paragraphs: []string{
					"By creating an account or using Kryva, you agree to these Terms of Service. If you do not agree, do not use the service.",
				},
			},
			{
				Heading: "2. Description of Service",
				Paragraphs: []string{
					"Kryva is a study companion for students. It builds a learning profile from your onboarding answers and uses it to suggest study plans, resources and reminders.",
				},
			},
			{
				Heading: "3. Accounts",
				Subsections: []Section{
					{
						Heading: "3.1 Eligibility",
						Paragraphs: []string{
							"You must be enrolled, or planning to enroll, in a post-secondary institution and be old enough to form a binding contract where you live.",
						},
					},
					{
						Heading: "3.2 Account Security",
						Paragraphs: []string{
							"You are responsible for keeping your sign-in credentials confidential. Some sensitive actions, such as deleting your account, require that you signed in recently.",
						},
					},
					{
						Heading: "3.3 Accurate Information",
						Paragraphs: []string{
							"Keep your profile accurate. Recommendations are only as good as the information you provide.",
						},
					},
				},
			},
			{
				Heading: "4. Acceptable Use",
				Paragraphs: []string{
					"You agree not to:",
				},
				Bullets: []string{
					"use Kryva to violate your institution's academic integrity policies",
					"attempt to access another user's account or data",
					"interfere with or disrupt the service or its infrastructure",
					"scrape, copy or resell content from the service",
				},
			},
			{
				Heading: "5. Your Data",
				Paragraphs: []string{
					"Your profile stores the answers you give during onboarding and on the preferences page: demographics, academic goals, skill self-assessment, time constraints, wellbeing indicators and learning preferences.",
				},
				Subsections: []Section{
					{
						Heading: "5.1 How We Use It",
						Bullets: []string{
							"to personalise study recommendations",
							"to operate and improve the service",
							"to contact you about your account",
						},
					},
					{
						Heading: "5.2 Account Deletion",
						Paragraphs: []string{
							"You can delete your account at any time from the preferences page. Your profile is marked as deleted immediately and your sign-in identity is removed. Deletion cannot be undone.",
						},
					},
				},
			},
			{
				Heading: "6. Educational Disclaimer",
				Paragraphs: []string{
					"Kryva provides study guidance, not academic, medical or mental-health advice. If you are struggling, contact your institution's support services.",
				},
			},
			{
				Heading: "7. Limitation of Liability",
				Paragraphs: []string{
					"The service is provided \"as is\". To the extent permitted by law, Kryva is not liable for indirect or consequential damages, including lost grades or academic outcomes.",
				},
			},
			{
				Heading: "8. Changes to These Terms",
				Paragraphs: []string{
					"We may update these terms. The date at the top of this page shows when they last changed. Continued use after a change means you accept the updated terms.",
				},
			},
			{
				Heading: "9. Contact",
				Paragraphs: []string{
					"Questions about these terms can be sent to " + ContactEmail + ".",
				},
			},
		},
	}
}
