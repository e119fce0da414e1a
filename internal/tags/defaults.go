package tags

import "github.com/jonathan/job-compare/internal/types"

// NoneOfTheAbove is the catch-all tag the tagger assigns when nothing else fits.
const NoneOfTheAbove = 28

var defaultTags = []types.Tag{
	{ID: 1, Name: "Math & Stats"},
	{ID: 2, Name: "Chemistry & Materials Science"},
	{ID: 3, Name: "Physics & Astronomy"},
	{ID: 4, Name: "Biology & Life Sciences"},
	{ID: 5, Name: "Environmental Science"},
	{ID: 6, Name: "Mechanical & Industrial & Electrical Engineering"},
	{ID: 7, Name: "Computer Programming & DevOps & Cloud & Data Infrastructure"},
	{ID: 8, Name: "AI Safety & Cybersecurity"},
	{ID: 9, Name: "Game Development"},
	{ID: 10, Name: "Robotics"},
	{ID: 11, Name: "Finance, Accounting & Investment"},
	{ID: 12, Name: "Insurance & Acturial"},
	{ID: 13, Name: "Real Estate"},
	{ID: 14, Name: "Legal & Compliance"},
	{ID: 15, Name: "Supply Chain & Logistics"},
	{ID: 16, Name: "Strategy & Operations"},
	{ID: 17, Name: "Product & Project Management"},
	{ID: 18, Name: "Sales & Marketing & Customer Success"},
	{ID: 19, Name: "Data Science & Machine Learning"},
	{ID: 20, Name: "Medical & Clinical Practice"},
	{ID: 21, Name: "Creative & Digital Design"},
	{ID: 22, Name: "Social Sciences & Humanities"},
	{ID: 23, Name: "Education"},
	{ID: 24, Name: "Human Resources & Talent Management"},
	{ID: 25, Name: "Writing, Language & Localization"},
	{ID: 26, Name: "Nonprofit"},
	{ID: 27, Name: "Quality Assurance"},
	{ID: NoneOfTheAbove, Name: "None of the above categories"},
}

// Default returns the built-in reference registry.
func Default() *Registry {
	r, err := New(defaultTags)
	if err != nil {
		// The built-in list is static; a failure here is a programming error.
		panic(err)
	}
	return r
}
