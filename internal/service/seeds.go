package service

import "github.com/noah-isme/syntaxscout-api/internal/models"

func defaultAssignments() []models.Assignment {
	return []models.Assignment{
		{ID: 1, Title: "Build a Portfolio Website", Course: "Web Development Fundamentals", Due: "2025-08-15", Status: models.AssignmentPending, Completed: false, Updated: "2025-08-02"},
		{ID: 2, Title: "React Todo App", Course: "React & Frontend Development", Due: "2025-08-20", Status: models.AssignmentPending, Completed: false, Updated: "2025-08-10"},
		{ID: 3, Title: "Data Analysis Report", Course: "Python for Data Analysis", Due: "2025-07-25", Status: models.AssignmentCompleted, Completed: true, Updated: "2025-07-19"},
		{ID: 4, Title: "ML Model Evaluation", Course: "Machine Learning with Python", Due: "2025-08-22", Status: models.AssignmentPending, Completed: false, Updated: "2025-08-12"},
		{ID: 5, Title: "Security Audit", Course: "Cybersecurity & Ethical Hacking", Due: "2025-06-30", Status: models.AssignmentPending, Completed: false, Updated: "2025-06-22"},
	}
}

func defaultGrades() []models.Grade {
	return []models.Grade{
		{ID: 1, Course: "Web Development Fundamentals", Grade: 85, Progress: 60, Completed: false, Updated: "2025-08-02"},
		{ID: 2, Course: "React & Frontend Development", Grade: 78, Progress: 45, Completed: false, Updated: "2025-08-10"},
		{ID: 3, Course: "Python for Data Analysis", Grade: 92, Progress: 100, Completed: true, Updated: "2025-07-19"},
		{ID: 4, Course: "Machine Learning with Python", Grade: 67, Progress: 35, Completed: false, Updated: "2025-08-12"},
		{ID: 5, Course: "Cybersecurity & Ethical Hacking", Grade: 73, Progress: 15, Completed: false, Updated: "2025-06-22"},
	}
}

func defaultMessages() []models.Message {
	return []models.Message{
		{ID: 1, Sender: "Instructor A", Subject: "Welcome to the course", Body: "Hi, welcome! Please review the syllabus.", Date: "2025-08-01T09:15:00Z", Read: false},
		{ID: 2, Sender: "System", Subject: "Assignment graded", Body: "Your assignment has been graded. Check the details.", Date: "2025-08-10T13:40:00Z", Read: true},
		{ID: 3, Sender: "Peer B", Subject: "Study group?", Body: "Would you like to join a study session this weekend?", Date: "2025-08-11T18:00:00Z", Read: false},
		{ID: 4, Sender: "Admin", Subject: "Maintenance Notice", Body: "Scheduled maintenance tomorrow 02:00 - 04:00 UTC.", Date: "2025-07-30T06:00:00Z", Read: true},
		{ID: 5, Sender: "Instructor C", Subject: "Project update", Body: "Please see updated project requirements.", Date: "2025-08-12T11:20:00Z", Read: false},
	}
}

func defaultFeedback() []models.Feedback {
	const (
		beginner   = "As a beginner, I found the learning structure very accommodating and well-paced."
		dataCourse = "I enrolled for the data analysis course and it was worth every moment."
		transform  = "Syntax Scout transformed my learning experience. The classes are well structured and interactive."
		mentorship = "The mentorship program at Syntax Scout gave me real-world project experience."
		tutors     = "I appreciate the patience and professionalism of the tutors at Syntax Scout."
	)
	return []models.Feedback{
		{ID: 1, Name: "John Bassey", Feedback: beginner, Rating: 5, Date: "12/06/2025"},
		{ID: 2, Name: "Kingsley Balogun", Feedback: dataCourse, Rating: 5, Date: "08/04/2025"},
		{ID: 3, Name: "Esther Nwachukwu", Feedback: transform, Rating: 5, Date: "24/08/2025"},
		{ID: 4, Name: "Emeka Mohammed", Feedback: beginner, Rating: 5, Date: "08/08/2025"},
		{ID: 5, Name: "Divine Bassey", Feedback: "I learned so much about modern tech tools at Syntax Scout. The instructors are top-notch.", Rating: 4, Date: "07/01/2025"},
		{ID: 6, Name: "Precious Mohammed", Feedback: "Thanks to Syntax Scout, I can now build responsive websites confidently.", Rating: 4, Date: "05/03/2025"},
		{ID: 7, Name: "Tunde Oluwole", Feedback: "The bootcamp improved my technical and problem-solving skills immensely.", Rating: 4, Date: "24/06/2025"},
		{ID: 8, Name: "Ezekiel Nnamdi", Feedback: mentorship, Rating: 5, Date: "17/12/2025"},
		{ID: 9, Name: "Esther Johnson", Feedback: dataCourse, Rating: 4, Date: "23/08/2025"},
		{ID: 10, Name: "Joy Okafor", Feedback: mentorship, Rating: 4, Date: "26/06/2025"},
		{ID: 11, Name: "Samuel Okafor", Feedback: "Syntax Scout made me fall in love with coding. The environment is very encouraging.", Rating: 5, Date: "30/06/2025"},
		{ID: 12, Name: "Felix Ojo", Feedback: dataCourse, Rating: 5, Date: "15/11/2025"},
		{ID: 13, Name: "Miracle Nnamdi", Feedback: beginner, Rating: 4, Date: "11/12/2025"},
		{ID: 14, Name: "Benjamin Mohammed", Feedback: mentorship, Rating: 5, Date: "21/11/2025"},
		{ID: 15, Name: "Felix Ogunleye", Feedback: transform, Rating: 5, Date: "24/01/2025"},
		{ID: 16, Name: "Esther Oluwole", Feedback: transform, Rating: 5, Date: "27/12/2025"},
		{ID: 17, Name: "Peter Onyeka", Feedback: tutors, Rating: 4, Date: "26/04/2025"},
		{ID: 18, Name: "Grace Ogunleye", Feedback: mentorship, Rating: 4, Date: "25/09/2025"},
		{ID: 19, Name: "Samuel Chukwu", Feedback: tutors, Rating: 4, Date: "16/01/2025"},
		{ID: 20, Name: "Michael Abiola", Feedback: "The practical sessions helped me understand the concepts easily. Highly recommend Syntax Scout.", Rating: 5, Date: "22/10/2025"},
	}
}

// courseCatalog is the static public catalog. ID 13 was never published.
func courseCatalog() []models.Course {
	return []models.Course{
		{ID: 1, Title: "Web Development Fundamentals", Description: "Learn HTML, CSS, and JavaScript to build responsive websites from scratch.", Instructor: "John Doe", Duration: 8, Price: 89, Category: "Web Dev", Image: "/public/WebDevlopmentFundamentalImage.avif"},
		{ID: 2, Title: "React & Frontend Development", Description: "Master React and Tailwind CSS to create powerful modern web apps.", Instructor: "Sarah Johnson", Duration: 10, Price: 119, Category: "Web Dev", Image: "/public/ReactandFrontendDevelopment.avif"},
		{ID: 3, Title: "Python for Data Analysis", Description: "Analyze and visualize data using Pandas, NumPy, and Matplotlib.", Instructor: "Emma Brown", Duration: 10, Price: 139, Category: "Data", Image: "/public/PythonfordataAnal.webp"},
		{ID: 4, Title: "Machine Learning with Python", Description: "Train predictive models and understand key algorithms using TensorFlow.", Instructor: "Michael Green", Duration: 14, Price: 179, Category: "Data", Image: "/public/MachineLanguagePython.avif"},
		{ID: 5, Title: "Cybersecurity & Ethical Hacking", Description: "Learn to protect systems, detect vulnerabilities, and perform penetration testing.", Instructor: "James Carter", Duration: 12, Price: 189, Category: "Security", Image: "/public/CyberSecurityImage.jfif"},
		{ID: 6, Title: "Cloud Computing with AWS", Description: "Get hands-on with AWS to deploy and manage scalable applications.", Instructor: "Laura Kim", Duration: 10, Price: 169, Category: "Cloud", Image: "/public/CloudComputing.jfif"},
		{ID: 7, Title: "Networking & IT Infrastructure", Description: "Understand routing, switching, and network security for modern infrastructures.", Instructor: "Robert Allen", Duration: 9, Price: 99, Category: "Security", Image: "/public/NetworkingandIT.jfif"},
		{ID: 8, Title: "UI/UX Design Principles", Description: "Design intuitive and beautiful interfaces using Figma and modern design systems.", Instructor: "Sophia Martinez", Duration: 6, Price: 109, Category: "Design", Image: "/public/UIandUX.jpg"},
		{ID: 9, Title: "Graphic Design Professional Course", Description: "Become a professional graphic designer using Adobe Photoshop, Illustrator, and CorelDRAW.", Instructor: "David Williams", Duration: 8, Price: 129, Category: "Design", Image: "/public/GraphicDesign.jfif"},
		{ID: 10, Title: "Backend Development Course", Description: "Master Node.js, Express, and databases to build secure backend APIs.", Instructor: "Grace Miller", Duration: 12, Price: 149, Category: "Web Dev", Image: "/public/BackendDevelopment.webp"},
		{ID: 11, Title: "Fullstack Development Course", Description: "Learn frontend and backend integration using React, Node.js, and MongoDB.", Instructor: "Chris Johnson", Duration: 14, Price: 199, Category: "Web Dev", Image: "/public/FullStack.jfif"},
		{ID: 12, Title: "Desktop Publishing Course", Description: "Learn document layout, typesetting, and page design with industry tools.", Instructor: "Angela Roberts", Duration: 6, Price: 79, Category: "Design", Image: "/public/DesktopPublisher.jpg"},
		{ID: 14, Title: "Office Application Course", Description: "Master Microsoft Word, Excel, PowerPoint, and Outlook for productivity.", Instructor: "Lisa White", Duration: 5, Price: 59, Category: "Business", Image: "/public/OfficeApplication.jfif"},
		{ID: 15, Title: "AutoCAD Course", Description: "Learn 2D and 3D modeling for architectural and mechanical designs using AutoCAD.", Instructor: "Daniel Evans", Duration: 10, Price: 139, Category: "Engineering", Image: "/public/autocad.jfif"},
		{ID: 16, Title: "Digital Marketing Course", Description: "Learn SEO, social media marketing, and ad campaigns for business growth.", Instructor: "Olivia Lee", Duration: 8, Price: 119, Category: "Business", Image: "/public/digitalmarketing.jpg"},
		{ID: 17, Title: "Business Electronics Course", Description: "Understand computer hardware, maintenance, and business tech systems.", Instructor: "Henry Adams", Duration: 9, Price: 129, Category: "Business", Image: "/public/bussinesssCourse.jpg"},
	}
}

func defaultSettings() models.Settings {
	return models.Settings{
		Notifications: models.NotificationSettings{Email: true, Push: false, CourseUpdates: true},
		Academic:      models.AcademicSettings{Language: "English", GradeView: "percentage", AttendanceAlerts: true},
		Subscription:  models.Subscription{Plan: "School Premium", Status: "Active", NextBillingDate: "2026-02-01", NextBillingAmount: 14.99},
		Devices: []models.Device{
			{ID: 1, Name: "Chrome on Windows", Location: "Lagos, NG", Active: true},
			{ID: 2, Name: "Mobile App", Location: "Abuja, NG", Active: false},
		},
	}
}
