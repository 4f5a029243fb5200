package repository

import (
	"fmt"

	"rerank/internal/domain/candidate"
)

type seedProfile struct {
	name, title, location, company, experience string
	overall                                    int
	region                                     string
	// sub-score offsets from overall: skills, certifications, experience, industry
	offsets [4]int
	skillN  int
}

var baseSkills = []string{"JavaScript", "Python", "React", "AWS"}

var shortProfiles = []seedProfile{
	{name: "Lisa Chang", title: "Frontend Developer", location: "Toronto, CA", company: "Shopify", experience: "3 years", overall: 3156, region: "North America", offsets: [4]int{42, -87, 15, -60}, skillN: 4},
	{name: "James Wilson", title: "Security Engineer", location: "London, UK", company: "Palantir", experience: "8 years", overall: 3089, region: "Europe", offsets: [4]int{-35, 120, 64, -12}, skillN: 2},
	{name: "Maria Garcia", title: "Product Manager", location: "Madrid, ES", company: "Spotify", experience: "6 years", overall: 3045, region: "Europe", offsets: [4]int{-71, 33, 88, 5}, skillN: 3},
	{name: "Ryan O'Connor", title: "iOS Developer", location: "Dublin, IE", company: "Apple", experience: "5 years", overall: 2987, region: "Europe", offsets: [4]int{58, -140, -22, 91}, skillN: 2},
	{name: "Priya Patel", title: "Cloud Architect", location: "Mumbai, IN", company: "Zomato", experience: "7 years", overall: 2934, region: "Asia Pacific", offsets: [4]int{17, 96, -48, -83}, skillN: 4},
	{name: "Sophie Martin", title: "UX Designer", location: "Paris, FR", company: "Figma", experience: "4 years", overall: 2876, region: "Europe", offsets: [4]int{-96, -30, 71, 44}, skillN: 3},
	{name: "Hassan Ali", title: "Blockchain Developer", location: "Dubai, AE", company: "Binance", experience: "3 years", overall: 2823, region: "Asia Pacific", offsets: [4]int{83, 12, -65, -18}, skillN: 2},
	{name: "Anna Kowalski", title: "QA Engineer", location: "Warsaw, PL", company: "CD Projekt", experience: "5 years", overall: 2778, region: "Europe", offsets: [4]int{-8, -112, 39, 77}, skillN: 3},
	{name: "Carlos Santos", title: "Data Engineer", location: "São Paulo, BR", company: "Nubank", experience: "4 years", overall: 2734, region: "Asia Pacific", offsets: [4]int{29, 145, -91, -40}, skillN: 4},
	{name: "Yuki Tanaka", title: "Game Developer", location: "Tokyo, JP", company: "Nintendo", experience: "6 years", overall: 2689, region: "Asia Pacific", offsets: [4]int{-54, -66, 8, 99}, skillN: 2},
}

// SeedCandidates returns the mock candidate set the server boots with. Overall
// scores are taken as listed; ranks are assigned when the store is seeded.
func SeedCandidates() []candidate.Candidate {
	out := []candidate.Candidate{
		detailed("Alex Chen", "Senior Full Stack Developer", "San Francisco, CA", "Meta", "5 years",
			"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			3487, [4]int{3500, 3800, 3200, 3450},
			[]string{"React", "Node.js", "AWS", "Python", "TypeScript", "Docker", "Kubernetes", "GraphQL"},
			"Elite Pro", "North America", "Technology"),
		detailed("Sarah Johnson", "Principal Data Scientist", "New York, NY", "Google", "7 years",
			"https://images.unsplash.com/photo-1494790108755-2616b612b1ac?w=150&h=150&fit=crop",
			3421, [4]int{3450, 3700, 3100, 3300},
			[]string{"Python", "TensorFlow", "SQL", "Azure", "Spark", "Tableau", "R", "MLOps"},
			"Top 1%", "North America", "Technology"),
		detailed("Michael Rodriguez", "DevOps Architect", "Austin, TX", "Microsoft", "6 years",
			"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			3398, [4]int{3400, 3600, 3250, 3350},
			[]string{"Kubernetes", "AWS", "Terraform", "Jenkins", "Docker", "Prometheus", "Grafana", "Python"},
			"Elite Pro", "North America", "Technology"),
		detailed("Emma Watson", "ML Engineer", "Seattle, WA", "Amazon", "4 years",
			"https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
			3276, [4]int{3300, 3100, 3200, 3400},
			[]string{"PyTorch", "Python", "GCP", "MLOps", "Kubernetes", "TensorFlow", "Scikit-learn"},
			"Rising Talent", "North America", "Technology"),
		detailed("David Kim", "Backend Engineer", "Boston, MA", "Stripe", "4 years",
			"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop",
			3198, [4]int{3250, 2900, 3300, 3200},
			[]string{"Java", "Spring Boot", "PostgreSQL", "Redis", "Kafka", "Docker", "AWS"},
			"Top 1%", "North America", "Fintech"),
	}

	for i, p := range shortProfiles {
		badge := "Rising Talent"
		if p.overall > 3000 {
			badge = "Top 1%"
		}
		skills := make([]string, p.skillN)
		copy(skills, baseSkills[:p.skillN])

		out = append(out, detailed(p.name, p.title, p.location, p.company, p.experience,
			fmt.Sprintf("https://images.unsplash.com/photo-150780321%d?w=150&h=150&fit=crop", i),
			p.overall,
			[4]int{p.overall + p.offsets[0], p.overall + p.offsets[1], p.overall + p.offsets[2], p.overall + p.offsets[3]},
			skills, badge, p.region, "Technology"))
	}
	return out
}

func detailed(name, title, location, company, experience, imageURL string, overall int, sub [4]int, skills []string, badge, region, industry string) candidate.Candidate {
	return candidate.Candidate{
		Name:                name,
		Title:               title,
		Location:            location,
		Company:             &company,
		Experience:          &experience,
		ImageURL:            &imageURL,
		OverallScore:        overall,
		SkillsScore:         sub[0],
		CertificationsScore: sub[1],
		ExperienceScore:     sub[2],
		IndustryScore:       sub[3],
		Skills:              skills,
		Badge:               &badge,
		Region:              region,
		Industry:            industry,
	}
}
