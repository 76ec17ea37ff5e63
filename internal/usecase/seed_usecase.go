package usecase

import (
	"context"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/logger"

	"github.com/google/uuid"
)

type seedUsecase struct {
	companyRepo domain.CompanyRepository
	skillRepo   domain.SkillRepository
	courseRepo  domain.CourseRepository
	studyRepo   domain.HigherStudyRepository
	testRepo    domain.TestRepository
	mentorRepo  domain.MentorRepository
	chatbotRepo domain.ChatbotRepository
}

func NewSeedUsecase(
	companyRepo domain.CompanyRepository,
	skillRepo domain.SkillRepository,
	courseRepo domain.CourseRepository,
	studyRepo domain.HigherStudyRepository,
	testRepo domain.TestRepository,
	mentorRepo domain.MentorRepository,
	chatbotRepo domain.ChatbotRepository,
) domain.SeedUsecase {
	return &seedUsecase{
		companyRepo: companyRepo,
		skillRepo:   skillRepo,
		courseRepo:  courseRepo,
		studyRepo:   studyRepo,
		testRepo:    testRepo,
		mentorRepo:  mentorRepo,
		chatbotRepo: chatbotRepo,
	}
}

func (u *seedUsecase) Seed(ctx context.Context) error {
	for i := range seedCompanies {
		company := seedCompanies[i]
		company.ID = uuid.NewString()
		if err := u.companyRepo.Create(ctx, &company); err != nil {
			return err
		}
	}
	for i := range seedSkills {
		skill := seedSkills[i]
		skill.ID = uuid.NewString()
		if err := u.skillRepo.Create(ctx, &skill); err != nil {
			return err
		}
	}
	for i := range seedCourses {
		course := seedCourses[i]
		course.ID = uuid.NewString()
		if err := u.courseRepo.Create(ctx, &course); err != nil {
			return err
		}
	}
	for i := range seedHigherStudies {
		study := seedHigherStudies[i]
		study.ID = uuid.NewString()
		if err := u.studyRepo.Create(ctx, &study); err != nil {
			return err
		}
	}
	for i := range seedTests {
		test := seedTests[i]
		test.ID = uuid.NewString()
		if err := u.testRepo.Create(ctx, &test); err != nil {
			return err
		}
	}
	for i := range seedMentors {
		mentor := seedMentors[i]
		mentor.ID = uuid.NewString()
		if err := u.mentorRepo.Create(ctx, &mentor); err != nil {
			return err
		}
	}
	for i := range seedChatbotEntries {
		entry := seedChatbotEntries[i]
		entry.ID = uuid.NewString()
		if err := u.chatbotRepo.Create(ctx, &entry); err != nil {
			return err
		}
	}

	logger.Log.Info("Demo dataset seeded")
	return nil
}

var seedCompanies = []domain.Company{
	{
		Name: "TCS", Type: "Service", Est: 1968, HQ: "Mumbai",
		Role: "Ninja / Digital", Pkg: "3.6 - 7.0 LPA",
		History:  "Tata Consultancy Services is a leading IT services company.",
		Branches: []string{"Mumbai", "Delhi", "Bangalore"},
		HiringPattern: map[string]interface{}{
			"cgpa": "6.0+", "dsa": "Basic", "projects": "Preferred", "communication": "Good",
		},
		RequiredSkills: []string{"Java", "Python", "SQL"},
		FresherRoles: []domain.FresherRole{
			{Role: "Software Engineer", Salary: "3.6 LPA", Skills: []string{"Java", "Python"}},
			{Role: "System Engineer", Salary: "3.8 LPA", Skills: []string{"Networking", "Linux"}},
		},
		InternshipURL: "https://www.tcs.com/careers/internship",
	},
	{
		Name: "Amazon", Type: "Product", Est: 1994, HQ: "Seattle",
		Role: "SDE", Pkg: "8.0 - 15.0 LPA",
		History:  "Amazon is a multinational technology company.",
		Branches: []string{"Bangalore", "Hyderabad", "Gurgaon"},
		HiringPattern: map[string]interface{}{
			"cgpa": "7.0+", "dsa": "Advanced", "projects": "Required", "communication": "Excellent",
		},
		RequiredSkills: []string{"DSA", "System Design", "Java/C++"},
		FresherRoles: []domain.FresherRole{
			{Role: "Software Development Engineer", Salary: "12 LPA", Skills: []string{"DSA", "System Design"}},
		},
		InternshipURL: "https://www.amazon.jobs/en/teams/internship",
	},
}

var seedSkills = []domain.Skill{
	{
		Category: "technical",
		Name:     "Data Structures & Algorithms",
		LearningResources: domain.LearningResources{
			Free: []string{
				"https://www.youtube.com/watch?v=0IAPZzGSbME",
				"https://www.geeksforgeeks.org/data-structures/",
			},
			Paid: []string{
				"https://www.udemy.com/course/data-structures-and-algorithms-deep-dive-using-java/",
				"https://www.coursera.org/specializations/data-structures-algorithms",
			},
		},
		Tests: []map[string]interface{}{
			{"name": "Practice Test", "url": "https://www.geeksforgeeks.org/practice/"},
			{"name": "Mock Test", "difficulty": "Medium", "questions": 4, "timeLimit": 60},
		},
	},
	{
		Category: "communication",
		Name:     "English Speaking",
		LearningResources: domain.LearningResources{
			Free: []string{"https://www.youtube.com/watch?v=0IAPZzGSbME"},
			Paid: []string{"https://www.udemy.com/course/communication-skills/"},
		},
	},
}

var seedCourses = []domain.Course{
	{
		Title: "Web Development", Icon: "ph-globe", Color: "bg-blue-100 text-blue-600",
		Desc:     "Master HTML, CSS, JS & React.",
		Playlist: []string{"HTML/CSS Basics", "JS Fundamentals", "React Basics"},
		Notes:    []string{"DOM Manipulation", "CSS Box Model", "React Components"},
		Roadmap:  []string{"HTML/CSS", "JavaScript", "Frontend Framework", "Backend", "Deployment"},
	},
	{
		Title: "Data Science", Icon: "ph-chart-bar", Color: "bg-green-100 text-green-600",
		Desc:     "Learn Python, ML & Data Analysis.",
		Playlist: []string{"Python Basics", "Pandas", "Machine Learning"},
		Notes:    []string{"Data Cleaning", "Visualization", "ML Algorithms"},
		Roadmap:  []string{"Python", "Statistics", "ML", "Deep Learning", "Projects"},
	},
}

var seedHigherStudies = []domain.HigherStudy{
	{
		Name:     "M.Tech",
		Benefits: "Advanced technical knowledge, better job prospects, higher salary",
		Courses: []map[string]interface{}{
			{"name": "M.Tech CSE", "duration": "2 years", "eligibility": "B.Tech with 60%"},
			{"name": "M.Tech AI", "duration": "2 years", "eligibility": "B.Tech with 65%"},
		},
		AfterCompletion: map[string]interface{}{
			"jobOptions":  []string{"Senior Engineer", "Research Scientist", "Professor"},
			"careerPaths": []string{"R&D", "Academia", "Industry"},
			"salaryRange": "8-20 LPA",
		},
	},
	{
		Name:     "MBA",
		Benefits: "Business acumen, leadership skills, networking",
		Courses: []map[string]interface{}{
			{"name": "MBA Finance", "duration": "2 years", "eligibility": "Bachelor's degree"},
			{"name": "MBA Marketing", "duration": "2 years", "eligibility": "Bachelor's degree"},
		},
		AfterCompletion: map[string]interface{}{
			"jobOptions":  []string{"Manager", "Consultant", "Entrepreneur"},
			"careerPaths": []string{"Corporate", "Consulting", "Startup"},
			"salaryRange": "10-25 LPA",
		},
	},
}

var seedTests = []domain.Test{
	{
		Title:      "Technical Skills Assessment",
		Difficulty: "Medium",
		Questions: []domain.Question{
			{
				Question: "What is the time complexity of quicksort?",
				Options:  []string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"},
				Answer:   1,
			},
			{
				Question: "Which data structure uses LIFO?",
				Options:  []string{"Queue", "Stack", "Array", "Linked List"},
				Answer:   1,
			},
		},
		TimeLimit: 60,
	},
}

var seedMentors = []domain.Mentor{
	{
		Name: "John Doe", Experience: "10 years", Domain: "Software Development",
		Availability: "Weekends", Pricing: 500, IsPaid: true,
	},
	{
		Name: "Jane Smith", Experience: "8 years", Domain: "Data Science",
		Availability: "Evenings", Pricing: 0, IsPaid: false,
	},
}

var seedChatbotEntries = []domain.ChatbotEntry{
	{
		Question: "What skills needed for Amazon?",
		Answer:   "Amazon requires strong DSA, System Design, and coding skills in Java/C++.",
		Category: "companies",
	},
	{
		Question: "How to prepare for placements?",
		Answer:   "Focus on DSA, projects, communication skills, and practice coding regularly.",
		Category: "general",
	},
}
