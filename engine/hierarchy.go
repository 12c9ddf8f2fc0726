package engine

import (
	"github.com/Arvelo-Commerce/arvelo-storefront-backend/models"
	"github.com/google/uuid"
)

// maxTraversalDepth bounds parent/child walks so a snapshot that violates the
// forest invariant (a cycle in parent references) terminates instead of
// spinning. Taxonomies deeper than this don't occur in practice.
const maxTraversalDepth = 32

// AncestorsOf returns the parent chain of id, closest parent first, walking
// upward until a root category is reached. An id not present in the snapshot
// yields an empty list.
func AncestorsOf(categories []models.Category, id uuid.UUID) []uuid.UUID {
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	ancestors := make([]uuid.UUID, 0)
	visited := map[uuid.UUID]bool{id: true}

	current, ok := byID[id]
	for depth := 0; ok && current.ParentID != nil && depth < maxTraversalDepth; depth++ {
		parentID := *current.ParentID
		if visited[parentID] {
			break
		}
		visited[parentID] = true

		parent, exists := byID[parentID]
		if !exists {
			break
		}
		ancestors = append(ancestors, parentID)
		current = parent
	}

	return ancestors
}

// DescendantsOf returns every category reachable by following child links
// downward from id, depth-first. Order among siblings is not guaranteed.
func DescendantsOf(categories []models.Category, id uuid.UUID) []uuid.UUID {
	childrenOf := make(map[uuid.UUID][]uuid.UUID, len(categories))
	for i := range categories {
		if categories[i].ParentID != nil {
			parentID := *categories[i].ParentID
			childrenOf[parentID] = append(childrenOf[parentID], categories[i].ID)
		}
	}

	descendants := make([]uuid.UUID, 0)
	visited := map[uuid.UUID]bool{id: true}

	var walk func(parent uuid.UUID, depth int)
	walk = func(parent uuid.UUID, depth int) {
		if depth >= maxTraversalDepth {
			return
		}
		for _, childID := range childrenOf[parent] {
			if visited[childID] {
				continue
			}
			visited[childID] = true
			descendants = append(descendants, childID)
			walk(childID, depth+1)
		}
	}
	walk(id, 0)

	return descendants
}

// ChainOf returns id together with all of its descendants. This is the
// membership set used for inclusive category filtering: selecting a parent
// also matches products tagged only with a child category.
func ChainOf(categories []models.Category, id uuid.UUID) []uuid.UUID {
	return append([]uuid.UUID{id}, DescendantsOf(categories, id)...)
}
