package domain

// AdditionalBuildFile is a single regular file to copy into the build context.
type AdditionalBuildFile struct {
	// Source is the path of the file on disk.
	Source string
	// Destination is the path relative to the files/ directory of the working directory.
	Destination string
}

// ManifestEntry describes one file copied into the build context.
type ManifestEntry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Hash string `json:"hash"`
}

// ContextManifest lists the files copied by one assemble run.
type ContextManifest struct {
	Entries []ManifestEntry `json:"entries"`
	Digest  string          `json:"digest"`
}
