package architecture

import (
	"fmt"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/render/cluster"
)

// Diagram names accepted by [Diagram].
const (
	DiagramInfrastructure = "infrastructure"
	DiagramNetwork        = "network"
	DiagramCICD           = "cicd"
	DiagramStunning       = "stunning"
)

var diagramBuilders = []struct {
	name  string
	build func() cluster.Diagram
}{
	{DiagramInfrastructure, infrastructureDiagram},
	{DiagramNetwork, networkDiagram},
	{DiagramCICD, cicdDiagram},
	{DiagramStunning, stunningDiagram},
}

// DiagramNames lists the available clustered diagrams in render order.
func DiagramNames() []string {
	names := make([]string, len(diagramBuilders))
	for i, b := range diagramBuilders {
		names[i] = b.name
	}
	return names
}

// Diagrams returns every clustered diagram in render order.
func Diagrams() []cluster.Diagram {
	out := make([]cluster.Diagram, len(diagramBuilders))
	for i, b := range diagramBuilders {
		out[i] = b.build()
	}
	return out
}

// Diagram returns the clustered diagram with the given name.
func Diagram(name string) (cluster.Diagram, error) {
	for _, b := range diagramBuilders {
		if b.name == name {
			return b.build(), nil
		}
	}
	return cluster.Diagram{}, errors.New(errors.ErrCodeNotFound,
		"unknown diagram %q (available: %s)", name, strings.Join(DiagramNames(), ", "))
}

func baseGraphAttr() map[string]string {
	return map[string]string{
		"fontsize": "16",
		"bgcolor":  "white",
		"pad":      "0.5",
	}
}

func infrastructureDiagram() cluster.Diagram {
	return cluster.Diagram{
		Name:      "gcp-infrastructure-architecture",
		Title:     "GCP Terraform Infrastructure with CI/CD",
		Direction: cluster.TopBottom,
		GraphAttr: baseGraphAttr(),
		Root: cluster.Cluster{Clusters: []cluster.Cluster{
			{Label: "GitHub Repository", Nodes: []cluster.Node{
				{ID: "github", Label: "GCP-Terraform\nRepository", Kind: cluster.KindRepo},
				{ID: "github_actions", Label: "GitHub Actions\nCI/CD Pipeline", Kind: cluster.KindPipeline},
			}},
			{Label: "Authentication", Nodes: []cluster.Node{
				{ID: "wif", Label: "Workload Identity\nFederation", Kind: cluster.KindIAM},
				{ID: "service_account", Label: "Service Account\ngalaxy@...", Kind: cluster.KindIAM},
			}},
			{Label: "GCP Project: " + Project, Clusters: []cluster.Cluster{
				{Label: "Network Layer", Nodes: []cluster.Node{
					{ID: "vpc", Label: "dev-vpc\n10.0.1.0/24", Kind: cluster.KindVPC},
					{ID: "router", Label: "Cloud Router", Kind: cluster.KindRouter},
					{ID: "nat", Label: "Cloud NAT", Kind: cluster.KindNAT},
					{ID: "firewall", Label: "Firewall Rules\nSSH, HTTP/HTTPS", Kind: cluster.KindFirewall},
				}},
				{Label: "Compute Layer", Nodes: []cluster.Node{
					{ID: "vm", Label: "dev-vm\ne2-medium\nUbuntu 22.04", Kind: cluster.KindCompute},
				}},
			}},
		}},
		Edges: []cluster.Edge{
			{From: "github", To: "github_actions", Label: "triggers"},
			{From: "github_actions", To: "wif", Label: "OIDC token", Color: "blue"},
			{From: "wif", To: "service_account", Label: "temporary token", Color: "green"},
			{From: "vpc", To: "router"},
			{From: "router", To: "nat"},
			{From: "vpc", To: "firewall"},
			{From: "service_account", To: "vpc", Label: "deploys", Color: "orange"},
			{From: "vpc", To: "vm"},
			{From: "firewall", To: "vm"},
		},
	}
}

func networkDiagram() cluster.Diagram {
	return cluster.Diagram{
		Name:      "gcp-network-architecture",
		Title:     "GCP Network Architecture",
		Direction: cluster.LeftRight,
		GraphAttr: baseGraphAttr(),
		Root: cluster.Cluster{Clusters: []cluster.Cluster{
			{Label: "Internet", Nodes: []cluster.Node{
				{ID: "internet", Label: "Internet", Kind: cluster.KindInternet},
			}},
			{Label: "GCP VPC: dev-vpc", Clusters: []cluster.Cluster{
				{Label: "Public", Nodes: []cluster.Node{
					{ID: "router", Label: "Cloud Router", Kind: cluster.KindRouter},
					{ID: "nat", Label: "Cloud NAT\nOutbound Only", Kind: cluster.KindNAT},
					{ID: "firewall", Label: "Firewall\nSSH: 22\nHTTP: 80/443", Kind: cluster.KindFirewall},
				}},
				{Label: "Private Subnet: 10.0.1.0/24", Nodes: []cluster.Node{
					{ID: "vm", Label: "dev-vm\n10.0.1.2\nPrivate IP", Kind: cluster.KindCompute},
				}},
			}},
		}},
		Edges: []cluster.Edge{
			{From: "internet", To: "firewall", Label: "inbound", Color: "red"},
			{From: "firewall", To: "vm"},
			{From: "vm", To: "nat", Label: "outbound", Color: "green"},
			{From: "nat", To: "router"},
			{From: "router", To: "internet"},
		},
	}
}

func cicdDiagram() cluster.Diagram {
	edges := cluster.Chain("push", "validate", "security", "plan", "apply")
	edges = append(edges,
		cluster.Edge{From: "apply", To: "wif_auth", Label: "authenticate", Color: "blue"},
		cluster.Edge{From: "wif_auth", To: "infrastructure", Label: "deploy", Color: "green"},
	)
	return cluster.Diagram{
		Name:      "cicd-pipeline-flow",
		Title:     "CI/CD Pipeline Flow",
		Direction: cluster.TopBottom,
		GraphAttr: baseGraphAttr(),
		Root: cluster.Cluster{Clusters: []cluster.Cluster{
			{Label: "Developer Workflow", Nodes: []cluster.Node{
				{ID: "push", Label: "Push Code", Kind: cluster.KindRepo},
			}},
			{Label: "GitHub Actions Pipeline", Nodes: []cluster.Node{
				{ID: "validate", Label: "Validate &\nLint", Kind: cluster.KindPipeline},
				{ID: "security", Label: "Security\nScan", Kind: cluster.KindPipeline},
				{ID: "plan", Label: "Terraform\nPlan", Kind: cluster.KindPipeline},
				{ID: "apply", Label: "Terraform\nApply", Kind: cluster.KindPipeline},
			}},
			{Label: "Authentication", Nodes: []cluster.Node{
				{ID: "wif_auth", Label: "WIF\nKeyless Auth", Kind: cluster.KindIAM},
			}},
			{Label: "GCP Infrastructure", Nodes: []cluster.Node{
				{ID: "infrastructure", Label: "Deploy\nInfrastructure", Kind: cluster.KindCompute},
			}},
		}},
		Edges: edges,
	}
}

type environment struct {
	name   string
	prefix string
	bg     string
	cidr   string
	status string
}

var environments = []environment{
	{"Development", "dev", "#E8F5E8", "10.10.0.0/16", "34.59.39.203"},
	{"Staging", "stg", "#FFF3E0", "10.20.0.0/16", "Pending"},
	{"Production", "prd", "#FFEBEE", "10.30.0.0/16", "Ready"},
}

func stunningDiagram() cluster.Diagram {
	d := cluster.Diagram{
		Name:      "stunning-architecture",
		Title:     "🚀 Enterprise GCP Terraform Infrastructure",
		Direction: cluster.TopBottom,
		GraphAttr: map[string]string{
			"fontsize":    "16",
			"fontname":    "Arial Bold",
			"bgcolor":     "transparent",
			"pad":         "1.0",
			"splines":     "curved",
			"concentrate": "true",
			"nodesep":     "1.5",
			"ranksep":     "2.0",
		},
		NodeAttr: map[string]string{
			"fontsize":  "12",
			"fontname":  "Arial",
			"style":     "filled,rounded",
			"fillcolor": "white",
			"color":     "#2196F3",
			"penwidth":  "2",
		},
		EdgeAttr: map[string]string{
			"fontsize":  "10",
			"fontname":  "Arial",
			"color":     "#1976D2",
			"penwidth":  "2",
			"arrowsize": "1.2",
		},
	}

	d.Root.Clusters = []cluster.Cluster{
		{
			Label: "👨‍💻 Development & CI/CD",
			Attr:  filledCluster("#E3F2FD"),
			Nodes: []cluster.Node{
				{ID: "developer", Label: "Developer", Kind: cluster.KindUsers},
				{ID: "github", Label: "GitHub Repository", Kind: cluster.KindRepo},
				{ID: "github_actions", Label: "GitHub Actions\n(WIF Authentication)", Kind: cluster.KindPipeline},
				{ID: "terraform_cli", Label: "Terraform CLI", Kind: cluster.KindTerraform},
			},
		},
		{
			Label: "🔐 Shared Infrastructure",
			Attr:  filledCluster("#F3E5F5"),
			Nodes: []cluster.Node{
				{ID: "wif_pool", Label: "Workload Identity Pool\n(github-pool)", Kind: cluster.KindIAM},
				{ID: "wif_provider", Label: "WIF Provider\n(github)", Kind: cluster.KindIAM},
				{ID: "service_account", Label: "Service Account\n(galaxy@praxis-gear)", Kind: cluster.KindIAM},
				{ID: "gcs_state", Label: "Terraform State\n(Remote Backend)", Kind: cluster.KindStorage},
			},
		},
	}

	var envEdges []cluster.Edge
	for _, env := range environments {
		lower := strings.ToLower(env.name)
		vpc, sec, vm := env.prefix+"_vpc", env.prefix+"_security", env.prefix+"_vm"
		d.Root.Clusters = append(d.Root.Clusters, cluster.Cluster{
			Label: fmt.Sprintf("🌐 %s Environment", env.name),
			Attr:  filledCluster(env.bg),
			Nodes: []cluster.Node{
				{ID: vpc, Label: fmt.Sprintf("%s-vpc\n(%s)", lower, env.cidr), Kind: cluster.KindVPC},
				{ID: sec, Label: "Security Rules\nSSH: Corporate Only", Kind: cluster.KindSecurity},
				{ID: vm, Label: fmt.Sprintf("%s-vm\n(%s)", lower, env.status), Kind: cluster.KindCompute},
			},
		})
		envEdges = append(envEdges,
			cluster.Edge{From: vpc, To: sec, Label: "protects", Style: "dashed"},
			cluster.Edge{From: sec, To: vm, Label: "allows", Color: "#4CAF50"},
		)
	}

	d.Edges = append(envEdges,
		cluster.Edge{From: "developer", To: "github", Label: "💻 commits", Color: "#FF9800", Style: "bold"},
		cluster.Edge{From: "github", To: "github_actions", Label: "🔄 triggers", Color: "#2196F3", Style: "bold"},
		cluster.Edge{From: "github_actions", To: "wif_pool", Label: "🔑 authenticates", Color: "#9C27B0", Style: "bold"},
		cluster.Edge{From: "wif_pool", To: "service_account", Label: "🎭 impersonates", Color: "#9C27B0"},
		cluster.Edge{From: "terraform_cli", To: "gcs_state", Label: "📊 stores state", Color: "#FF5722", Style: "bold"},
		cluster.Edge{From: "github_actions", To: "terraform_cli", Label: "🚀 deploys", Color: "#4CAF50", Style: "bold"},
	)
	for i, env := range environments {
		e := cluster.Edge{From: "terraform_cli", To: env.prefix + "_vpc", Color: "#757575", Style: "dashed"}
		if i == 0 {
			e = cluster.Edge{From: "terraform_cli", To: env.prefix + "_vpc", Label: "🏗️ provisions", Color: "#4CAF50"}
		}
		d.Edges = append(d.Edges, e)
	}
	return d
}

func filledCluster(bg string) map[string]string {
	return map[string]string{"bgcolor": bg, "style": "rounded,filled"}
}
