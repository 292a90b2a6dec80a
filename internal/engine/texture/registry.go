// Package texture provides the texture registry used by the renderer to map
// material texture names to GPU handles and their transparency classification.
package texture

import "image"

// Texture is a registered GPU texture.
type Texture struct {
	// Handle is the GL texture name; zero means untextured.
	Handle uint32
	// Transparent marks textures whose draws must be deferred to the
	// transparency pass.
	Transparent bool
}

// Registry maps texture names to registered textures.
// Not safe for concurrent use; the renderer reads it single-threaded per frame.
type Registry struct {
	entries map[string]Texture
}

// NewRegistry creates an empty texture registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Texture),
	}
}

// Add registers a texture under the given name, replacing any previous entry.
func (r *Registry) Add(name string, t Texture) {
	r.entries[name] = t
}

// Lookup returns the texture registered under name.
func (r *Registry) Lookup(name string) (Texture, bool) {
	t, ok := r.entries[name]
	return t, ok
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// HasAlpha reports whether any pixel of the image has a non-opaque alpha
// channel. Used to classify textures as transparent at registration time.
func HasAlpha(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a < 0xffff {
				return true
			}
		}
	}
	return false
}
