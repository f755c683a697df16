package acquisition

// DependencyNode is one node of an item's dependency tree: the item
// itself, the method that would obtain it, and the sub-items (recipe
// ingredients, smelting input, smelting fuel) that route needs.
type DependencyNode struct {
	Item     string
	Method   Method
	Children []*DependencyNode
}

// DependencyTree derives, for display and planning hints (never for
// execution — spec §4.5), the acquisition dependency tree for name,
// breaking cycles with a visited set so a recipe that (incorrectly)
// depends on itself transitively terminates instead of recursing
// forever.
func (c *Catalogue) DependencyTree(name string) *DependencyNode {
	return c.dependencyTree(name, make(map[string]bool))
}

func (c *Catalogue) dependencyTree(name string, visited map[string]bool) *DependencyNode {
	method, ok := c.method(name)
	node := &DependencyNode{Item: name, Method: method}
	if !ok || visited[name] {
		return node
	}
	visited[name] = true
	defer delete(visited, name)

	switch method {
	case MethodCraft:
		r := c.craftRecipes[name]
		for _, ing := range r.DistinctIngredients() {
			for _, ingName := range ing.AcceptableNames {
				if _, known := c.method(ingName); known {
					node.Children = append(node.Children, c.dependencyTree(ingName, visited))
					break
				}
			}
		}
	case MethodSmelt:
		sr := c.smeltRecipes[name]
		for _, inName := range sr.AcceptableInputs.AcceptableNames {
			if _, known := c.method(inName); known {
				node.Children = append(node.Children, c.dependencyTree(inName, visited))
				break
			}
		}
		for _, fuel := range sr.FuelSet {
			node.Children = append(node.Children, &DependencyNode{Item: fuel, Method: MethodCustom})
		}
	case MethodMine, MethodCustom:
		// Leaf routes: nothing further to derive.
	}
	return node
}
