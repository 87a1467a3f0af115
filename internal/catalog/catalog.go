package catalog

import "fmt"

type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefits    string `json:"benefits"`
	Jobs        string `json:"jobs"`
}

// courses is fixed at compile time; ids are unique and define the display order.
var courses = [...]Course{
	{
		ID:          "1",
		Title:       "Basic Life Skills",
		Description: "This course covers essential life skills such as personal hygiene, cooking, and time management. Participants will learn practical techniques aimed at improving daily living and promoting independence. This foundation enables individuals to navigate daily tasks confidently and effectively.",
		Benefits:    "Improved self-sufficiency and daily management skills.",
		Jobs:        "Roles in personal assistance, community services, and caregiving.",
	},
	{
		ID:          "2",
		Title:       "Effective Communication",
		Description: "In this course, learners will explore the fundamentals of effective communication, including verbal and non-verbal techniques. Emphasis will be placed on active listening, empathy, and assertiveness. This course equips participants with the skills needed to express themselves clearly and foster strong interpersonal relationships.",
		Benefits:    "Enhanced interpersonal relationships and workplace effectiveness.",
		Jobs:        "Customer service, teaching, management roles.",
	},
	{
		ID:          "3",
		Title:       "Financial Management",
		Description: "This course introduces the principles of financial literacy, focusing on budgeting, saving, and responsible spending. Participants will gain insights into managing personal finances and making informed financial decisions that align with their future goals.",
		Benefits:    "Greater control over personal finances and improved savings.",
		Jobs:        "Accounting, finance-related positions, and personal budgeting roles.",
	},
	{
		ID:          "4",
		Title:       "Health & Safety",
		Description: "Understanding health and safety is crucial for both personal well-being and workplace environments. This course covers essential practices and regulations that ensure a safe and healthy lifestyle.",
		Benefits:    "Increased awareness of health practices and workplace safety.",
		Jobs:        "Occupational health and safety officer, safety trainer.",
	},
	{
		ID:          "5",
		Title:       "Childcare Basics",
		Description: "Learn the essential skills for caring for children, including health, safety, and developmental milestones. This course prepares participants for roles that require nurturing and educational skills.",
		Benefits:    "Preparedness for childcare roles and understanding child development.",
		Jobs:        "Nanny, daycare assistant, early childhood educator.",
	},
	{
		ID:          "6",
		Title:       "Household Management",
		Description: "Develop skills in cleaning, cooking, and managing a household effectively. This course helps participants understand household budgeting, organization, and maintenance tasks.",
		Benefits:    "Efficient household management and time-saving techniques.",
		Jobs:        "Household manager, personal assistant.",
	},
	{
		ID:          "7",
		Title:       "Digital Literacy",
		Description: "In the digital age, having computer and internet skills is vital. This course covers basic computer usage, internet navigation, and online safety, preparing participants for modern job markets.",
		Benefits:    "Enhanced employability and ability to leverage technology.",
		Jobs:        "Office assistant, data entry roles, and tech support.",
	},
	{
		ID:          "8",
		Title:       "Gardening and Landscaping",
		Description: "Learn gardening techniques and landscape design principles. This course covers plant care, garden maintenance, and creative landscaping solutions to beautify outdoor spaces.",
		Benefits:    "Ability to create and maintain beautiful gardens.",
		Jobs:        "Gardener, landscaper, landscape designer.",
	},
}

// All returns the catalog in display order. The slice is a fresh copy.
func All() []Course {
	out := make([]Course, len(courses))
	copy(out, courses[:])
	return out
}

func ByID(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func Len() int { return len(courses) }

// Steps are the same three learning steps for every course, keyed by its title.
func Steps(c Course) []string {
	return []string{
		fmt.Sprintf("Understand the basics of %s.", c.Title),
		"Apply the knowledge through practical examples.",
		"Review how it benefits your personal and professional life.",
	}
}

func Prompt(c Course) string {
	return fmt.Sprintf("What have you learned about %s?", c.Title)
}
