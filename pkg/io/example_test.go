package io_test

import (
	"fmt"
	"strings"

	archio "github.com/matzehuels/archviz/pkg/io"
)

func ExampleReadJSON() {
	c, err := archio.ReadJSON(strings.NewReader(`{
		"title": "Two Environments",
		"nodes": [
			{"id": "dev", "label": "Dev VPC", "x": 30, "y": 40, "group": "dev"},
			{"id": "prod", "label": "Prod VPC", "x": 70, "y": 40, "group": "prod"}
		],
		"edges": [{"from": "dev", "to": "prod", "label": "promote"}]
	}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Title())
	fmt.Println(c.NodeCount(), "nodes,", c.EdgeCount(), "edge")
	// Output:
	// Two Environments
	// 2 nodes, 1 edge
}
