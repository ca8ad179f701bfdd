// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

// Direction is a marker for transmission direction of an endpoint.
type Direction int

const (
	// DirectionUnknown is used when no direction was given or it was not recognized.
	DirectionUnknown Direction = Unknown

	// DirectionSendRecv is for bidirectional communication.
	DirectionSendRecv Direction = iota

	// DirectionSendOnly is for outgoing communication.
	DirectionSendOnly

	// DirectionRecvOnly is for incoming communication.
	DirectionRecvOnly

	// DirectionInactive is for no communication.
	DirectionInactive
)

// This is done this way because of a linter.
const (
	directionSendRecvStr = "sendrecv"
	directionSendOnlyStr = "sendonly"
	directionRecvOnlyStr = "recvonly"
	directionInactiveStr = "inactive"
)

// NewDirection defines a procedure for creating a new direction from a raw
// string. Anything not recognized maps to DirectionUnknown.
func NewDirection(raw string) Direction {
	switch raw {
	case directionSendRecvStr:
		return DirectionSendRecv
	case directionSendOnlyStr:
		return DirectionSendOnly
	case directionRecvOnlyStr:
		return DirectionRecvOnly
	case directionInactiveStr:
		return DirectionInactive
	default:
		return DirectionUnknown
	}
}

func (t Direction) String() string {
	switch t {
	case DirectionSendRecv:
		return directionSendRecvStr
	case DirectionSendOnly:
		return directionSendOnlyStr
	case DirectionRecvOnly:
		return directionRecvOnlyStr
	case DirectionInactive:
		return directionInactiveStr
	default:
		return unknownStr
	}
}
