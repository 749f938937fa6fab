package controld

import "fmt"

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.controld.com"

const (
	pathDevices       = "/devices"
	pathProfiles      = "/profiles"
	pathAccess        = "/access"
	pathServices      = "/services/categories"
	pathAnalytics     = "/analytics"
	pathAccount       = "/users"
	pathBilling       = "/billing"
	pathOrganizations = "/organizations"
	pathProxies       = "/proxies"
)

func pathProfile(profileID, suffix string) string {
	return fmt.Sprintf("%s/%s%s", pathProfiles, profileID, suffix)
}

func pathMobileConfig(deviceID string) string {
	return "/mobileconfig/" + deviceID
}
