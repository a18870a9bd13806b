package ports

// ObsidianOpener defines the interface for opening entries in Obsidian
type ObsidianOpener interface {
	// OpenEntry opens the entry with the given title using the obsidian:// URI scheme
	OpenEntry(title string) error
}
