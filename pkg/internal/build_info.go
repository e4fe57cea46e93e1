package internal

// Set at build time by the Magefile.
var (
	Version   = "dev"
	BuildHash string
)

// BuildInfo identifies the running plugin binary.
type BuildInfo struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// Info returns the version and commit stamped into this build.
func Info() BuildInfo {
	return BuildInfo{Version: Version, Hash: BuildHash}
}
