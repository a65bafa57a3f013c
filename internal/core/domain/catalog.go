package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Folder is a node of the recipe tree.
type Folder struct {
	Folders map[string]*Folder `json:"folders"`
	Recipes map[string]*Recipe `json:"recipes"`
}

// NewFolder creates a new empty Folder.
func NewFolder() *Folder {
	return &Folder{
		Folders: make(map[string]*Folder),
		Recipes: make(map[string]*Recipe),
	}
}

// normalize makes sure the folder and all of its children have non-nil maps.
func (f *Folder) normalize() {
	if f.Folders == nil {
		f.Folders = make(map[string]*Folder)
	}
	if f.Recipes == nil {
		f.Recipes = make(map[string]*Recipe)
	}
	for name, child := range f.Folders {
		if child == nil {
			child = NewFolder()
			f.Folders[name] = child
		}
		child.normalize()
	}
	for name, r := range f.Recipes {
		if r == nil {
			f.Recipes[name] = &Recipe{}
		}
	}
}

// IsEmpty reports whether the folder has neither sub-folders nor recipes.
func (f *Folder) IsEmpty() bool {
	return len(f.Folders) == 0 && len(f.Recipes) == 0
}

// FolderNames returns the sub-folder names sorted by name.
func (f *Folder) FolderNames() []string {
	return sortedKeys(f.Folders)
}

// RecipeNames returns the recipe names sorted by name.
func (f *Folder) RecipeNames() []string {
	return sortedKeys(f.Recipes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the named recipe of the folder.
func (f *Folder) Lookup(name string) (*Recipe, error) {
	r, ok := f.Recipes[name]
	if !ok {
		return nil, recipeNotFound(name)
	}
	return r, nil
}

// Catalog is the recipe tree together with the current location inside it.
type Catalog struct {
	root *Folder
	path []string
}

// NewCatalog creates a Catalog positioned at the root of the given tree.
// A nil root yields an empty catalog.
func NewCatalog(root *Folder) *Catalog {
	if root == nil {
		root = NewFolder()
	}
	root.normalize()
	return &Catalog{root: root}
}

// Root returns the root folder of the tree.
func (c *Catalog) Root() *Folder {
	return c.root
}

// Path returns a copy of the current location as folder names from the root.
func (c *Catalog) Path() []string {
	return slices.Clone(c.path)
}

// Cwd returns the current location formatted as an absolute path.
func (c *Catalog) Cwd() string {
	return FormatPath(c.path)
}

// FormatPath renders a folder path as "/" or "/a/b".
func FormatPath(path []string) string {
	return "/" + strings.Join(path, "/")
}

// Current returns the folder at the current location.
func (c *Catalog) Current() *Folder {
	node := c.root
	for _, name := range c.path {
		node = node.Folders[name]
	}
	return node
}

// Enter moves the current location into the named sub-folder.
func (c *Catalog) Enter(name string) error {
	if _, ok := c.Current().Folders[name]; !ok {
		return folderNotFound(name)
	}
	c.path = append(c.path, name)
	return nil
}

// Up moves the current location to the parent folder.
func (c *Catalog) Up() error {
	if len(c.path) == 0 {
		return zerr.Wrap(ErrAtRoot, "already at root directory")
	}
	c.path = c.path[:len(c.path)-1]
	return nil
}

// CreateFolder adds an empty folder to the current location.
func (c *Catalog) CreateFolder(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	current := c.Current()
	if _, ok := current.Folders[name]; ok {
		return zerr.With(zerr.Wrap(ErrFolderExists, fmt.Sprintf("folder '%s' already exists", name)), "folder", name)
	}
	current.Folders[name] = NewFolder()
	return nil
}

// Folder returns the named sub-folder of the current location.
func (c *Catalog) Folder(name string) (*Folder, error) {
	f, ok := c.Current().Folders[name]
	if !ok {
		return nil, folderNotFound(name)
	}
	return f, nil
}

// DeleteFolder removes an empty sub-folder of the current location.
func (c *Catalog) DeleteFolder(name string) error {
	f, err := c.Folder(name)
	if err != nil {
		return err
	}
	if !f.IsEmpty() {
		msg := fmt.Sprintf("folder '%s' is not empty, delete its contents first", name)
		return zerr.With(zerr.Wrap(ErrFolderNotEmpty, msg), "folder", name)
	}
	delete(c.Current().Folders, name)
	return nil
}

// Recipe returns the named recipe of the current location.
func (c *Catalog) Recipe(name string) (*Recipe, error) {
	return c.Current().Lookup(name)
}

// AddRecipe stores a new recipe in the current location.
func (c *Catalog) AddRecipe(name string, r *Recipe) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	current := c.Current()
	if _, ok := current.Recipes[name]; ok {
		return zerr.With(zerr.Wrap(ErrRecipeExists, fmt.Sprintf("recipe '%s' already exists", name)), "recipe", name)
	}
	current.Recipes[name] = r
	return nil
}

// DeleteRecipe removes the named recipe from the current location.
func (c *Catalog) DeleteRecipe(name string) error {
	current := c.Current()
	if _, ok := current.Recipes[name]; !ok {
		return recipeNotFound(name)
	}
	delete(current.Recipes, name)
	return nil
}

// ResolveFolder resolves dest against the current location.
// Paths starting with "/" are absolute. ".." goes up one level and is ignored at the root;
// every other segment must name an existing folder.
func (c *Catalog) ResolveFolder(dest string) (*Folder, []string, error) {
	var (
		node *Folder
		full []string
	)
	if strings.HasPrefix(dest, "/") {
		node = c.root
	} else {
		node = c.Current()
		full = c.Path()
	}

	for _, part := range strings.Split(dest, "/") {
		switch {
		case part == "":
			continue
		case part == "..":
			if len(full) > 0 {
				full = full[:len(full)-1]
				node = c.walk(full)
			}
		default:
			child, ok := node.Folders[part]
			if !ok {
				msg := fmt.Sprintf("destination folder '%s' doesn't exist", part)
				return nil, nil, zerr.With(zerr.Wrap(ErrFolderNotFound, msg), "folder", part)
			}
			full = append(full, part)
			node = child
		}
	}
	return node, full, nil
}

// walk returns the folder at path starting from the root.
func (c *Catalog) walk(path []string) *Folder {
	node := c.root
	for _, name := range path {
		node = node.Folders[name]
	}
	return node
}

// MoveRecipe moves a recipe from the current location to dest and returns the destination
// path.
func (c *Catalog) MoveRecipe(name, dest string) (string, error) {
	current := c.Current()
	r, ok := current.Recipes[name]
	if !ok {
		return "", recipeNotFound(name)
	}

	target, full, err := c.ResolveFolder(dest)
	if err != nil {
		return "", err
	}

	target.Recipes[name] = r
	if target != current {
		delete(current.Recipes, name)
	}
	return FormatPath(full), nil
}

// MatchKind describes where a search query matched a recipe.
type MatchKind string

const (
	// MatchName means the query matched the recipe name.
	MatchName MatchKind = "name"
	// MatchIngredient means the query matched one of the ingredient names.
	MatchIngredient MatchKind = "ingredient"
)

// SearchHit is a recipe matched by Search.
type SearchHit struct {
	Path   []string
	Name   string
	Recipe *Recipe
	Match  MatchKind
}

// Search finds recipes whose name or ingredient names contain query, case-insensitively.
// It walks the whole tree depth-first: each folder's recipes come before its sub-folders,
// both sorted by name.
func (c *Catalog) Search(query string) []SearchHit {
	q := FoldCase(query)
	var hits []SearchHit

	var visit func(node *Folder, path []string)
	visit = func(node *Folder, path []string) {
		for _, name := range node.RecipeNames() {
			r := node.Recipes[name]
			if strings.Contains(FoldCase(name), q) {
				hits = append(hits, SearchHit{Path: path, Name: name, Recipe: r, Match: MatchName})
				continue
			}
			for _, ing := range r.Ingredients {
				if strings.Contains(FoldCase(ing.Name), q) {
					hits = append(hits, SearchHit{Path: path, Name: name, Recipe: r, Match: MatchIngredient})
					break
				}
			}
		}
		for _, name := range node.FolderNames() {
			visit(node.Folders[name], append(slices.Clone(path), name))
		}
	}

	visit(c.root, nil)
	return hits
}

// ValidateName rejects names that cannot be addressed from the command line.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return zerr.With(zerr.Wrap(ErrInvalidName, "name must not be empty"), "name", name)
	}
	if strings.Contains(name, "/") {
		err := zerr.Wrap(ErrInvalidName, fmt.Sprintf("name '%s' must not contain '/'", name))
		err = zerr.With(err, "invalid_character", "/")
		return zerr.With(err, "name", name)
	}
	return nil
}

func folderNotFound(name string) error {
	return zerr.With(zerr.Wrap(ErrFolderNotFound, fmt.Sprintf("folder '%s' doesn't exist", name)), "folder", name)
}

func recipeNotFound(name string) error {
	return zerr.With(zerr.Wrap(ErrRecipeNotFound, fmt.Sprintf("recipe '%s' doesn't exist", name)), "recipe", name)
}
