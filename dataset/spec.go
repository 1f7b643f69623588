package dataset

// Type classifies what kind of rows a dataset contributes.
type Type string

const (
	TypeListings  Type = "listings"
	TypeSkills    Type = "skills"
	TypeCompanies Type = "companies"
	TypeResumes   Type = "resumes"
)

// Spec identifies one upstream dataset.
type Spec struct {
	Slug  string
	Alias string
	Type  Type
}

// DefaultSpecs is the dataset registry for a standard run.
var DefaultSpecs = []Spec{
	{Slug: "arnavpp/internshala-internship-dataset", Alias: "internshala", Type: TypeListings},
	{Slug: "sujaykapadnis/job-listings-from-naukricom", Alias: "naukri-job", Type: TypeListings},
	{Slug: "asaniczka/linkedin-job-postings", Alias: "linkedin-job", Type: TypeListings},
	{Slug: "promptcloudhq/us-uk-india-jobs", Alias: "promptcloud-job", Type: TypeListings},
	{Slug: "ankurzing/scraped-skill-data", Alias: "skill-scrape", Type: TypeSkills},
	{Slug: "mahmoudalshami/linkedin-skills", Alias: "linkedin-skills", Type: TypeSkills},
	{Slug: "muhammadnayeem/skills-dataset", Alias: "skills-dataset", Type: TypeSkills},
	{Slug: "gauravduttakiit/resume-dataset", Alias: "resume-gaurav", Type: TypeResumes},
	{Slug: "snehaanbhawal/resume-dataset-job-title-annotations", Alias: "resume-annotated", Type: TypeResumes},
	{Slug: "mahimasingla09/profiles-data-datasets", Alias: "profiles", Type: TypeResumes},
	{Slug: "saurabhshahane/job-descriptions-dataset", Alias: "job-descriptions", Type: TypeListings},
	{Slug: "promptcloudhq/jobs-on-naukricom", Alias: "naukri-descriptions", Type: TypeListings},
	{Slug: "kapastor/2020-student-salary-survey", Alias: "salary", Type: TypeListings},
	{Slug: "peopledatalabssf/companies-dataset", Alias: "companies", Type: TypeCompanies},
}
