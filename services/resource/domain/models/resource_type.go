package models

import (
	"fmt"
	"sort"
)

// ResourceType binds a content category to its collection, its upload
// folder and the factory for its default (empty) form.
type ResourceType struct {
	Slug         string
	Collection   string
	UploadFolder string
	New          func() Item
}

var registry = map[string]ResourceType{
	"donations": {
		Slug:         "donations",
		Collection:   "donations",
		UploadFolder: "donation",
		New:          func() Item { return &Donation{Base: Base{ImageURLs: []string{}}} },
	},
	"events": {
		Slug:         "events",
		Collection:   "events",
		UploadFolder: "event",
		New:          func() Item { return &Event{Base: Base{ImageURLs: []string{}}} },
	},
	"news": {
		Slug:         "news",
		Collection:   "news",
		UploadFolder: "news",
		New:          func() Item { return &News{Base: Base{ImageURLs: []string{}}} },
	},
	"podcasts": {
		Slug:         "podcasts",
		Collection:   "podcasts",
		UploadFolder: "podcast",
		New:          func() Item { return &Podcast{Base: Base{ImageURLs: []string{}}} },
	},
	"quizzes": {
		Slug:         "quizzes",
		Collection:   "quizzes",
		UploadFolder: "quiz",
		New:          func() Item { return &Quiz{Base: Base{ImageURLs: []string{}}, Questions: []QuizQuestion{}} },
	},
}

// LookupResourceType returns the registered resource type for slug.
func LookupResourceType(slug string) (ResourceType, bool) {
	rt, ok := registry[slug]
	return rt, ok
}

// MustResourceType is LookupResourceType for compile-time known slugs.
func MustResourceType(slug string) ResourceType {
	rt, ok := registry[slug]
	if !ok {
		panic(fmt.Sprintf("models: unknown resource type %q", slug))
	}
	return rt
}

// ResourceTypes lists every registered resource type ordered by slug.
func ResourceTypes() []ResourceType {
	out := make([]ResourceType, 0, len(registry))
	for _, rt := range registry {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// UploadFolders lists the upload folder of every registered resource type.
func UploadFolders() []string {
	types := ResourceTypes()
	out := make([]string, len(types))
	for i, rt := range types {
		out[i] = rt.UploadFolder
	}
	return out
}
