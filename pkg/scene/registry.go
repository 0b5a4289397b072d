package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// builtinScene pairs scene metadata with its constructor
type builtinScene struct {
	description string
	group       string
	create      func(Options) *Scene
}

const (
	groupSpheres  = "Spheres"
	groupTextures = "Textures"
	groupLights   = "Lights"
)

var builtinScenes = map[string]builtinScene{
	"default":       {"Glass, diffuse and fuzzy metal spheres with depth of field", groupSpheres, NewDefaultScene},
	"redblue":       {"Two touching spheres filling a 90 degree view", groupSpheres, NewRedBlueScene},
	"bouncing":      {"Random sphere field with motion blur", groupSpheres, NewBouncingScene},
	"checkered":     {"Two spheres with a 3D checker texture", groupTextures, NewCheckeredScene},
	"earth":         {"Globe with an equirectangular image texture", groupTextures, NewEarthScene},
	"perlin":        {"Perlin marble turbulence", groupTextures, NewPerlinScene},
	"quads":         {"Five colored quads", groupTextures, NewQuadsScene},
	"simple-light":  {"Marble spheres lit by a sphere light and a quad light", groupLights, NewSimpleLightScene},
	"cornell":       {"Cornell box with two rotated blocks", groupLights, NewCornellScene},
	"cornell-smoke": {"Cornell box with smoke and fog blocks", groupLights, NewCornellSmokeScene},
	"final":         {"Showcase of every primitive, material and texture", groupLights, NewFinalScene},
}

// Names returns the ids of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene. The scene is not yet preprocessed.
func Create(name string, opts Options) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return entry.create(opts), nil
}

// ListAllScenes returns the built-in scenes, grouped by category
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, name := range Names() {
		entry := builtinScenes[name]
		groupMap[entry.group] = append(groupMap[entry.group], SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: entry.description,
			Group:       entry.group,
		})
	}

	var groupNames []string
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
