package ats

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DefaultRole is used when neither configuration nor the caller picks a role.
const DefaultRole = "Data Scientist"

// builtinRoles maps job roles to the keyword lists used for fixed-list
// scoring. Keywords are lowercase and kept in a deliberate order since
// matched keywords are reported in list order.
var builtinRoles = map[string][]string{
	"Data Scientist": {
		"python", "machine learning", "data science", "deep learning",
		"nlp", "tensorflow", "pytorch", "sql", "statistics",
		"data visualization", "pandas", "numpy", "scikit-learn", "r",
	},
	"Software Engineer": {
		"java", "c++", "python", "git", "docker", "rest api",
		"microservices", "kubernetes", "aws", "sql", "agile", "spring",
		"javascript", "react", "node.js",
	},
	"DevOps Engineer": {
		"docker", "kubernetes", "aws", "terraform", "jenkins", "ci/cd",
		"monitoring", "linux", "bash", "ansible", "prometheus", "grafana",
	},
	"Frontend Developer": {
		"html", "css", "javascript", "react", "vue.js", "angular",
		"typescript", "webpack", "sass", "responsive design", "ui/ux",
	},
	"Backend Developer": {
		"java", "python", "node.js", "express", "sql", "mongodb",
		"rest api", "microservices", "docker", "kubernetes", "aws",
	},
	"Full Stack Developer": {
		"javascript", "react", "node.js", "express", "sql", "mongodb",
		"docker", "aws", "html", "css", "typescript", "graphql",
	},
	"Machine Learning Engineer": {
		"python", "machine learning", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "nlp", "computer vision", "docker", "aws", "api",
	},
	"Data Engineer": {
		"sql", "python", "spark", "hadoop", "airflow", "etl", "aws",
		"big data", "kafka", "data warehousing", "nosql",
	},
	"QA Engineer": {
		"selenium", "test automation", "manual testing", "junit", "cucumber",
		"postman", "performance testing", "jira", "bug tracking", "rest api",
	},
	"Cloud Engineer": {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"ci/cd", "cloud architecture", "monitoring", "security",
	},
	"Security Engineer": {
		"network security", "penetration testing", "firewalls", "encryption",
		"vulnerability assessment", "aws security", "compliance", "siem",
		"incident response",
	},
	"Mobile Developer": {
		"android", "ios", "java", "kotlin", "swift", "react native",
		"flutter", "mobile ui/ux", "xcode", "android studio",
	},
	"Database Administrator": {
		"sql", "oracle", "mysql", "postgresql", "performance tuning",
		"backup and recovery", "replication", "indexing", "nosql",
	},
	"Product Manager": {
		"roadmap planning", "stakeholder management", "agile", "scrum",
		"user stories", "market research", "analytics", "communication",
	},
	"UX/UI Designer": {
		"wireframing", "prototyping", "figma", "adobe xd", "user research",
		"interaction design", "visual design", "usability testing",
	},
}

// builtinOrder keeps role listings stable for interactive pickers.
var builtinOrder = []string{
	"Data Scientist",
	"Software Engineer",
	"DevOps Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Machine Learning Engineer",
	"Data Engineer",
	"QA Engineer",
	"Cloud Engineer",
	"Security Engineer",
	"Mobile Developer",
	"Database Administrator",
	"Product Manager",
	"UX/UI Designer",
}

// Catalog resolves job roles to keyword lists, falling back to a default role
// for unknown lookups.
type Catalog struct {
	defaultRole string
	roles       map[string][]string
	order       []string
}

// NewCatalog builds a catalog over the built-in roles. An empty or unknown
// default role falls back to DefaultRole.
func NewCatalog(defaultRole string) *Catalog {
	roles := make(map[string][]string, len(builtinRoles))
	for role, keywords := range builtinRoles {
		roles[role] = append([]string(nil), keywords...)
	}

	c := &Catalog{
		roles: roles,
		order: append([]string(nil), builtinOrder...),
	}

	defaultRole = strings.TrimSpace(defaultRole)
	if _, ok := c.roles[defaultRole]; !ok {
		defaultRole = DefaultRole
	}
	c.defaultRole = defaultRole

	return c
}

// MergeConfig folds custom roles from configuration into the catalog. The raw
// value comes straight from the config tree, so it is decoded with
// mapstructure. Custom keywords are lowercased and shadow built-in roles of
// the same name.
func (c *Catalog) MergeConfig(raw any) error {
	if raw == nil {
		return nil
	}

	var custom map[string][]string
	if err := mapstructure.Decode(raw, &custom); err != nil {
		return fmt.Errorf("decoding custom roles: %w", err)
	}

	for role, keywords := range custom {
		role = strings.TrimSpace(role)
		if role == "" || len(keywords) == 0 {
			continue
		}

		lowered := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				lowered = append(lowered, kw)
			}
		}

		if _, exists := c.roles[role]; !exists {
			c.order = append(c.order, role)
		}
		c.roles[role] = lowered
	}

	return nil
}

// Keywords returns the keyword list for the role and the role name actually
// used. Unknown roles resolve to the default role.
func (c *Catalog) Keywords(role string) ([]string, string) {
	role = strings.TrimSpace(role)
	if keywords, ok := c.roles[role]; ok {
		return keywords, role
	}
	return c.roles[c.defaultRole], c.defaultRole
}

// Roles lists all known roles in a stable order.
func (c *Catalog) Roles() []string {
	return append([]string(nil), c.order...)
}

// Default returns the fallback role name.
func (c *Catalog) Default() string {
	return c.defaultRole
}
