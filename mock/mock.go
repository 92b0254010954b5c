// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../foursquare_iface.go -destination mock_foursquare/mock_foursquare_iface.go
//go:generate mockgen -source ../internal/flow/flow_iface.go -destination mock_flow/mock_flow_iface.go
//go:generate mockgen -source ../internal/provider/provider_iface.go -destination mock_provider/mock_provider_iface.go
//go:generate mockgen -source ../internal/profile/profile_iface.go -destination mock_profile/mock_profile_iface.go
