package widget

// UserInfo holds the state necessary to present information about a
// message's author.
type UserInfo struct {
	// Avatar contains the cached image op for the author's avatar.
	Avatar CachedImage
}
