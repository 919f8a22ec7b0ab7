// This file is part of Gopher65C02.
//
// Gopher65C02 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65C02 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"context"

	"github.com/jetsetilly/gopher65c02/curated"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a client of the gopher65c02.Remote service.
type Client struct {
	cc grpc.ClientConnInterface

	// the connection created by Dial(). nil if the client was created with
	// NewClient()
	conn *grpc.ClientConn
}

// NewClient creates a client that uses an existing connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial creates a client with a new, insecure, connection to the address.
func Dial(address string, opts ...grpc.DialOption) (*Client, error) {
	if address == "" {
		address = DefaultAddress
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, curated.Errorf("remote: %v", err)
	}

	return &Client{cc: conn, conn: conn}, nil
}

// Close the connection created by Dial().
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Reset the remote machine.
func (c *Client) Reset(ctx context.Context) error {
	out := new(emptypb.Empty)
	return c.cc.Invoke(ctx, method("Reset"), &emptypb.Empty{}, out)
}

// Load the program into the memory of the remote machine.
func (c *Client) Load(ctx context.Context, program []byte) error {
	out := new(emptypb.Empty)
	return c.cc.Invoke(ctx, method("Load"), wrapperspb.Bytes(program), out)
}

func (c *Client) state(ctx context.Context, name string) (State, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, method(name), &emptypb.Empty{}, out)
	if err != nil {
		return State{}, err
	}
	return stateFromStruct(out), nil
}

// Step the remote machine by one instruction.
func (c *Client) Step(ctx context.Context) (State, error) {
	return c.state(ctx, "Step")
}

// Run the remote machine until it halts.
func (c *Client) Run(ctx context.Context) (State, error) {
	return c.state(ctx, "Run")
}

// Registers returns the state of the remote machine.
func (c *Client) Registers(ctx context.Context) (State, error) {
	return c.state(ctx, "Registers")
}

// Peek returns the value in memory of the remote machine.
func (c *Client) Peek(ctx context.Context, address uint16) (uint8, error) {
	out := new(wrapperspb.UInt32Value)
	err := c.cc.Invoke(ctx, method("Peek"), wrapperspb.UInt32(uint32(address)), out)
	if err != nil {
		return 0, err
	}
	return uint8(out.GetValue()), nil
}
