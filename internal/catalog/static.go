// Package catalog содержит статический каталог репетиторов.
// Записи фиксируются на этапе сборки и никогда не изменяются:
// если id есть в каталоге, эта версия всегда авторитетна.
package catalog

import "github.com/Haedeel-Basel/My-Tutor/internal/model"

// SubjectAll сентинел "все предметы" для фильтрации.
const SubjectAll = "All"

// Subjects список известных предметов.
var Subjects = []string{
	"Mathematics",
	"Programming",
	"English",
	"Science",
	"History",
	"Languages",
	"Test Prep",
	"Music",
}

var tutors = []model.Tutor{
	{
		ID:           "1",
		Name:         "Sarah Johnson",
		Subject:      "Mathematics",
		Rating:       4.9,
		ReviewCount:  127,
		HourlyRate:   45,
		Image:        "/assets/tutor-sarah.jpg",
		Specialties:  []string{"Algebra", "Calculus", "Statistics", "SAT Prep"},
		Availability: "Available today",
		Bio:          "I am a passionate mathematics educator with over 8 years of experience helping students excel in math. I specialize in making complex concepts easy to understand through practical examples and personalized teaching methods.",
		Experience:   "8",
		Education:    "PhD in Mathematics, Stanford University",
		Languages:    []string{"English", "Spanish"},
		Timezone:     "PST",
	},
	{
		ID:           "2",
		Name:         "Mike Chen",
		Subject:      "Programming",
		Rating:       4.8,
		ReviewCount:  89,
		HourlyRate:   65,
		Image:        "/assets/tutor-mike.jpg",
		Specialties:  []string{"JavaScript", "Python", "React", "Web Development"},
		Availability: "Available tomorrow",
		Bio:          "Full-stack developer and coding instructor with 6 years of industry experience. I love teaching programming through hands-on projects and real-world applications.",
		Experience:   "6",
		Education:    "BS Computer Science, UC Berkeley",
		Languages:    []string{"English", "Mandarin"},
		Timezone:     "PST",
	},
	{
		ID:           "3",
		Name:         "Emma Wilson",
		Subject:      "English",
		Rating:       4.9,
		ReviewCount:  156,
		HourlyRate:   40,
		Image:        "/assets/tutor-emma.jpg",
		Specialties:  []string{"Essay Writing", "Literature", "Grammar", "IELTS Prep"},
		Availability: "Available now",
		Bio:          "English literature graduate and experienced tutor specializing in writing skills, reading comprehension, and test preparation. I help students develop confidence in their English abilities.",
		Experience:   "5",
		Education:    "MA English Literature, Harvard University",
		Languages:    []string{"English", "French"},
		Timezone:     "EST",
	},
}

// All возвращает все записи каталога в исходном порядке.
func All() []model.Tutor {
	return tutors
}

// GetByID ищет репетитора по точному совпадению id.
func GetByID(id string) (model.Tutor, bool) {
	for _, t := range tutors {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tutor{}, false
}

// BySubject возвращает записи каталога по предмету.
// SubjectAll возвращает все записи.
func BySubject(subject string) []model.Tutor {
	if subject == SubjectAll {
		return tutors
	}

	var result []model.Tutor
	for _, t := range tutors {
		if t.Subject == subject {
			result = append(result, t)
		}
	}
	return result
}
