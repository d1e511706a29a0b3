package propstable

// UseNodesData documents the signature of the useNodesData hook.
var UseNodesData = Table{
	Props: []Row{
		{Name: "Params"},
		{
			Name:        "nodeIds",
			Type:        "string | string[]",
			Description: "A single node ID or an array of node IDs whose `data` objects you want to observe",
		},
		{Name: "Returns"},
		{Name: "", Type: "any | any[]"},
	},
}
