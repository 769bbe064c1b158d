// Package bridge defines the wire contract of the privileged bridge: the
// closed set of operation names and their request/response shapes. The
// host serves these ops; the isolated client may invoke nothing else.
package bridge

// Operation names. Each op is an independent request/response exchange,
// awaited to completion; there is no fire-and-forget.
const (
	OpGetEnv              = "get-env"
	OpSetSecureStorage    = "set-secure-storage"
	OpGetSecureStorage    = "get-secure-storage"
	OpDeleteSecureStorage = "delete-secure-storage"
	OpGetAppVersion       = "get-app-version"
	OpGetAppPath          = "get-app-path"
)

// AllowedEnvKeys is the closed set of environment variable names the host
// will answer for. Any other name yields an empty string, never an error.
var AllowedEnvKeys = []string{
	"NODE_ENV",
	"NEXTAUTH_SECRET",
	"DATABASE_URL",
	"GOOGLE_CLIENT_ID",
	"GITHUB_ID",
}

type GetEnvRequest struct {
	Key string `json:"key"`
}

type GetEnvResponse struct {
	Value string `json:"value"`
}

type SetSecureStorageRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SetSecureStorageResponse struct {
	OK bool `json:"ok"`
}

type GetSecureStorageRequest struct {
	Key string `json:"key"`
}

type GetSecureStorageResponse struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

type DeleteSecureStorageRequest struct {
	Key string `json:"key"`
}

type DeleteSecureStorageResponse struct {
	OK bool `json:"ok"`
}

type GetAppVersionResponse struct {
	Version string `json:"version"`
}

type GetAppPathRequest struct {
	Name string `json:"name"`
}

type GetAppPathResponse struct {
	Path string `json:"path"`
}
