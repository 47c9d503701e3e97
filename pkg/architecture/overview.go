package architecture

import "github.com/matzehuels/archviz/pkg/render/textdiagram"

const stackNote = "Complete security & networking stack"

// Overview returns the ASCII project overview.
func Overview() textdiagram.Document {
	return textdiagram.Document{
		Title:  "GCP Terraform Infrastructure Architecture",
		Spaced: true,
		Root: textdiagram.Item{
			Label: "Project: " + Project,
			Children: []textdiagram.Item{
				{Label: "Shared WIF Infrastructure (Persistent)", Children: []textdiagram.Item{
					{Label: "github-actions-pool (WIF Pool)"},
					{Label: "github-actions (WIF Provider)"},
					{Label: "github-actions-sa (Service Account)"},
				}},
				{Label: "Development Environment (DEPLOYED)", Children: []textdiagram.Item{
					{Label: "development-vpc (10.10.0.0/16)"},
					{Label: "development-vm (e2-medium, 34.59.39.203)"},
					{Label: stackNote},
				}},
				{Label: "Staging Environment (READY)", Children: []textdiagram.Item{
					{Label: "staging-vpc (10.20.0.0/16)"},
					{Label: "staging-vm (e2-standard-2, us-central1-c)"},
					{Label: stackNote},
				}},
				{Label: "Production Environment (READY)", Children: []textdiagram.Item{
					{Label: "production-vpc (10.30.0.0/16)"},
					{Label: "production-vm (e2-standard-4, us-central1-b)"},
					{Label: stackNote},
				}},
			},
		},
		Sections: []textdiagram.Section{
			{
				Title: "CI/CD Flow",
				Kind:  textdiagram.Flow,
				Lines: []string{"GitHub Actions", "WIF Authentication", "Environment Deployment"},
			},
			{
				Title: "Security",
				Kind:  textdiagram.Bullets,
				Lines: []string{
					"Individual VPC per environment (complete isolation)",
					"Shared WIF for consistent authentication",
					"Private SSH access only",
					"Enterprise naming conventions",
				},
			},
		},
	}
}
