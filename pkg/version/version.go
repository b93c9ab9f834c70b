package version

// Version is set at build time:
//
//	go build -ldflags "-X github.com/bookstoreapi/bookstore/pkg/version.Version=1.2.0" ./cmd/api
var Version = "dev"

// AppID identifies the bookstore in outgoing requests to object storage.
func AppID() string {
	return "bookstore/" + Version
}
