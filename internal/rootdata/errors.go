// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rootdata

import "fmt"

// TransportError is returned when the HTTP request could not be completed,
// or the server responded with a non-2xx status.  StatusCode is zero if
// no response was received.
type TransportError struct {
	Endpoint   Endpoint
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("rootdata: %s: %v", e.Endpoint, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("rootdata: %s: API returned status: %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("rootdata: %s: API returned status: %d", e.Endpoint, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError is returned when the response envelope carries a result code
// other than [ResultOK].
type UpstreamError struct {
	Endpoint Endpoint
	Code     int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API Error: %d", e.Code)
}
