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

// Package remote exposes a Machine over gRPC. The service is named
// "gopher65c02.Remote" and all messages are protobuf well-known types, so
// no generated code is required by either end of the connection:
//
//	Reset(Empty) Empty
//	Load(BytesValue) Empty
//	Step(Empty) Struct
//	Run(Empty) Struct
//	Registers(Empty) Struct
//	Peek(UInt32Value) UInt32Value
//
// The Struct returned by Step, Run and Registers describes the state of the
// machine. The Client type decodes it into the State type.
//
// Access to the Machine is serialised by the Server. A Run request is
// stopped when the context of the request is cancelled.
package remote
