package figure_test

import (
	"fmt"

	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/figure"
)

func ExampleBuildEdgeLayer() {
	nodes := []catalog.Node{
		{ID: "A", X: 10, Y: 90, Group: catalog.GroupDev},
		{ID: "B", X: 90, Y: 10, Group: catalog.GroupDev},
	}
	edges := []catalog.Edge{{From: "A", To: "B"}}

	tr, err := figure.BuildEdgeLayer(nodes, edges)
	if err != nil {
		panic(err)
	}
	fmt.Println(tr.X)
	fmt.Println(tr.Y)
	// Output:
	// [10 90 null]
	// [90 10 null]
}

func ExampleBuild() {
	c := catalog.MustNew(catalog.Spec{
		Title: "Two environments",
		Nodes: []catalog.Node{
			{ID: "dev", Label: "Dev VM", X: 25, Y: 50, Group: catalog.GroupDev},
			{ID: "prod", Label: "Prod VM", X: 75, Y: 50, Group: catalog.GroupProd},
		},
		Edges:  []catalog.Edge{{From: "dev", To: "prod", Label: "promote"}},
		Colors: catalog.DefaultColors(),
	})

	fig, err := figure.Build(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(fig.Data), fig.Data[1].Marker.Color)
	// Output: 2 [#27ae60 #eb5757]
}
