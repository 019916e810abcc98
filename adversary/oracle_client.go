// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adversary

import (
	"fmt"
	"os/exec"

	hclog "github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
)

// pluginMap names the single dispensable plugin this module defines,
// the shape go-plugin's client expects regardless of how many plugin
// kinds a host supports.
var pluginMap = map[string]goplugin.Plugin{
	"oracle": &GRPCPlugin{},
}

// DialOracle launches binaryPath as a child process speaking the
// oracle gRPC protocol and returns a client-side ActionOracle plus a
// cleanup function the caller must invoke to terminate the child and
// close the connection, grounded on the teacher's own out-of-process
// VM plugin launch sequence (goplugin.NewClient → Client → Dispense).
func DialOracle(binaryPath string) (ActionOracle, func(), error) {
	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         pluginMap,
		Cmd:             exec.Command(binaryPath),
		AllowedProtocols: []goplugin.Protocol{
			goplugin.ProtocolGRPC,
		},
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:  "oracle-plugin",
			Level: hclog.Warn,
		}),
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("adversary: dial oracle plugin: %w", err)
	}

	raw, err := rpcClient.Dispense("oracle")
	if err != nil {
		client.Kill()
		return nil, nil, fmt.Errorf("adversary: dispense oracle plugin: %w", err)
	}

	oracle, ok := raw.(ActionOracle)
	if !ok {
		client.Kill()
		return nil, nil, fmt.Errorf("adversary: oracle plugin returned %T, not an ActionOracle", raw)
	}

	return oracle, client.Kill, nil
}
