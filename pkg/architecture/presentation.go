package architecture

import "github.com/matzehuels/archviz/pkg/catalog"

// PresentationTitle is the heading of the presentation figure.
const PresentationTitle = "GCP Terraform Architecture (Individual VPC per Environment + Shared WIF)"

// Project is the GCP project the layout deploys into.
const Project = "praxis-gear-483220-k4"

var presentationNodes = []catalog.Node{
	{ID: "repo", Label: "GitHub Repo", X: 12, Y: 86, Group: catalog.GroupGitHub,
		Hover: "<b>GitHub Repository</b><br>surajkmr39-lang/GCP-Terraform"},
	{ID: "gha", Label: "GitHub Actions", X: 33, Y: 86, Group: catalog.GroupGitHub,
		Hover: "<b>CI/CD</b><br>Validation → Security Scan → Terraform Plan/Apply"},
	{ID: "wif", Label: "Shared WIF", X: 58, Y: 86, Group: catalog.GroupWIF,
		Hover: "<b>Workload Identity Federation</b><br>Pool: github-actions-pool<br>Provider: github-actions<br>Service Account: github-actions-sa"},
	{ID: "gcp", Label: "GCP Project", X: 82, Y: 86, Group: catalog.GroupMeta,
		Hover: "<b>GCP Project</b><br>" + Project},

	{ID: "dev_vpc", Label: "Dev VPC", X: 18, Y: 55, Group: catalog.GroupDev,
		Hover: "<b>Development VPC</b><br>development-vpc<br>CIDR: 10.10.0.0/16"},
	{ID: "dev_sec", Label: "Dev FW", X: 8, Y: 45, Group: catalog.GroupDev,
		Hover: "<b>Security</b><br>Firewall rules: SSH / HTTP(S) / Internal / Health Checks"},
	{ID: "dev_iam", Label: "Dev IAM", X: 18, Y: 45, Group: catalog.GroupDev,
		Hover: "<b>IAM</b><br>Service Account: development-vm-sa<br>Roles: compute.viewer, storage.objectViewer, logging.logWriter, monitoring.metricWriter"},
	{ID: "dev_vm", Label: "Dev VM", X: 28, Y: 45, Group: catalog.GroupDev,
		Hover: "<b>Compute</b><br>development-vm<br>Machine: e2-medium<br>External IP: 34.59.39.203"},

	{ID: "stg_vpc", Label: "Staging VPC", X: 50, Y: 55, Group: catalog.GroupStaging,
		Hover: "<b>Staging VPC</b><br>staging-vpc<br>CIDR: 10.20.0.0/16"},
	{ID: "stg_sec", Label: "Staging FW", X: 40, Y: 45, Group: catalog.GroupStaging,
		Hover: "<b>Security</b><br>Firewall rules aligned to staging environment"},
	{ID: "stg_iam", Label: "Staging IAM", X: 50, Y: 45, Group: catalog.GroupStaging,
		Hover: "<b>IAM</b><br>Service Account: staging-vm-sa<br>WIF binding to shared pool"},
	{ID: "stg_vm", Label: "Staging VM", X: 60, Y: 45, Group: catalog.GroupStaging,
		Hover: "<b>Compute</b><br>staging-vm<br>Machine: e2-standard-2"},

	{ID: "prd_vpc", Label: "Prod VPC", X: 82, Y: 55, Group: catalog.GroupProd,
		Hover: "<b>Production VPC</b><br>production-vpc<br>CIDR: 10.30.0.0/16"},
	{ID: "prd_sec", Label: "Prod FW", X: 72, Y: 45, Group: catalog.GroupProd,
		Hover: "<b>Security</b><br>Firewall rules aligned to production environment"},
	{ID: "prd_iam", Label: "Prod IAM", X: 82, Y: 45, Group: catalog.GroupProd,
		Hover: "<b>IAM</b><br>Service Account: production-vm-sa<br>WIF binding to shared pool"},
	{ID: "prd_vm", Label: "Prod VM", X: 92, Y: 45, Group: catalog.GroupProd,
		Hover: "<b>Compute</b><br>production-vm<br>Machine: e2-standard-4"},

	{ID: "modules", Label: "Terraform Modules", X: 50, Y: 18, Group: catalog.GroupMeta,
		Hover: "<b>Modules</b><br><code>modules/network</code>: VPC, Subnet, Router, NAT, Flow Logs<br><code>modules/security</code>: Firewall rules<br><code>modules/iam</code>: env SAs + WIF binding<br><code>modules/compute</code>: Shielded VM, OS Login"},
	{ID: "state", Label: "GCS Remote State", X: 80, Y: 18, Group: catalog.GroupMeta,
		Hover: "<b>State</b><br>Backend: GCS bucket " + Project + "-terraform-state<br>Separate prefixes per environment + shared/wif"},
}

var presentationEdges = []catalog.Edge{
	{From: "repo", To: "gha", Label: "push / PR"},
	{From: "gha", To: "wif", Label: "OIDC token"},
	{From: "wif", To: "gcp", Label: "impersonate SA"},
	{From: "gha", To: "gcp", Label: "terraform plan/apply"},
	{From: "wif", To: "dev_iam", Label: "shared auth"},
	{From: "wif", To: "stg_iam", Label: "shared auth"},
	{From: "wif", To: "prd_iam", Label: "shared auth"},
	{From: "dev_vpc", To: "dev_vm", Label: "subnet routing"},
	{From: "dev_sec", To: "dev_vm", Label: "tags: ssh/http/hc"},
	{From: "dev_iam", To: "dev_vm", Label: "attach SA"},
	{From: "stg_vpc", To: "stg_vm", Label: "subnet routing"},
	{From: "stg_sec", To: "stg_vm", Label: "tags: ssh/http/hc"},
	{From: "stg_iam", To: "stg_vm", Label: "attach SA"},
	{From: "prd_vpc", To: "prd_vm", Label: "subnet routing"},
	{From: "prd_sec", To: "prd_vm", Label: "tags: ssh/http/hc"},
	{From: "prd_iam", To: "prd_vm", Label: "attach SA"},
	{From: "modules", To: "dev_vpc", Label: "used by"},
	{From: "modules", To: "stg_vpc", Label: "used by"},
	{From: "modules", To: "prd_vpc", Label: "used by"},
	{From: "state", To: "dev_vpc", Label: "env state"},
	{From: "state", To: "stg_vpc", Label: "env state"},
	{From: "state", To: "prd_vpc", Label: "env state"},
	{From: "state", To: "wif", Label: "shared state"},
}

var presentationPanels = []catalog.Panel{
	{X0: 3, Y0: 76, X1: 97, Y1: 97, Title: "CI/CD & Authentication", Fill: "#fbfcfc"},
	{X0: 3, Y0: 32, X1: 33, Y1: 74, Title: "Development (dev)", Fill: "#ecfdf3"},
	{X0: 36, Y0: 32, X1: 66, Y1: 74, Title: "Staging (staging)", Fill: "#fffaf0"},
	{X0: 69, Y0: 32, X1: 97, Y1: 74, Title: "Production (prod)", Fill: "#fff5f5"},
	{X0: 3, Y0: 6, X1: 97, Y1: 28, Title: "Terraform modules + state", Fill: "#fbfcfc"},
}

// PresentationSpec returns the unvalidated inputs of the presentation
// catalog. Callers may adjust it before passing it to [catalog.New].
func PresentationSpec() catalog.Spec {
	return catalog.Spec{
		Title:  PresentationTitle,
		Nodes:  append([]catalog.Node(nil), presentationNodes...),
		Edges:  append([]catalog.Edge(nil), presentationEdges...),
		Panels: append([]catalog.Panel(nil), presentationPanels...),
		Colors: catalog.DefaultColors(),
	}
}

// Presentation returns the validated presentation catalog: 18 nodes,
// 23 edges and 5 panels.
func Presentation() *catalog.Catalog {
	return catalog.MustNew(PresentationSpec())
}
