package cache

// Listing is the parsed content of a tree at a revision.
// Names are relative to the tree and keep the order git printed them in.
type Listing struct {
	Files []string
	Dirs  []string
}

// clone copies both slices so callers cannot mutate cached state.
func (l *Listing) clone() *Listing {
	if l == nil {
		return nil
	}
	return &Listing{
		Files: append([]string{}, l.Files...),
		Dirs:  append([]string{}, l.Dirs...),
	}
}

// Stats describes the current contents of a Store and how it has been used.
type Stats struct {
	Files      int   // Raw file entries
	Dirs       int   // Parsed directory listings
	Tags       int   // Entries in the tag table (0 when not loaded)
	TagsLoaded bool  // Whether the tag table is populated
	Hits       int64 // Lookups answered from the store
	Misses     int64 // Lookups that fell through
	Spawns     int64 // Subprocesses started on behalf of this store
	Clears     int64 // Number of Clear calls
}
