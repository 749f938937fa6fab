// Package controld is a typed client for the ControlD REST API.
//
// Construct a Client with New and reach every resource group through
// its accessors:
//
//	api := controld.New(controld.Config{Token: token})
//	devices, err := api.Devices().List(ctx, controld.DeviceFilterAll)
//	rules, err := api.Profiles().CustomRules().List(ctx, profileID, nil)
//
// Every operation is one HTTP round trip. Successful responses are
// unwrapped from the {"body": ...} envelope and decoded into pkg/model
// records; failures become *APIError values carrying the HTTP status
// and the vendor error code and message.
package controld
