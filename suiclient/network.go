package suiclient

import "fmt"

// Network is a named Sui fullnode endpoint.
type Network struct {
	Name string
	URL  string
}

var (
	Mainnet  = Network{Name: "mainnet", URL: "https://fullnode.mainnet.sui.io:443"}
	Testnet  = Network{Name: "testnet", URL: "https://fullnode.testnet.sui.io:443"}
	Devnet   = Network{Name: "devnet", URL: "https://fullnode.devnet.sui.io:443"}
	Localnet = Network{Name: "localnet", URL: "http://127.0.0.1:9000"}
)

var networks = map[string]Network{
	Mainnet.Name:  Mainnet,
	Testnet.Name:  Testnet,
	Devnet.Name:   Devnet,
	Localnet.Name: Localnet,
}

// LookupNetwork returns the preset with the given name.
func LookupNetwork(name string) (Network, error) {
	n, ok := networks[name]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q", name)
	}
	return n, nil
}
