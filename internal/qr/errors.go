// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package qr

import (
	"errors"
	"fmt"
)

// Status is the outcome of an encode call.
type Status string

const (
	StatusOK               Status = "OK"
	StatusInvalidInput     Status = "INVALID_INPUT"
	StatusCapacityExceeded Status = "CAPACITY_EXCEEDED"
	StatusInternal         Status = "INTERNAL"
)

// Error is a typed rejection carrying the status reported to callers.
type Error struct {
	Status  Status
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...any) *Error {
	return &Error{Status: StatusInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// StatusOf extracts the status from err. Untyped errors are internal.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusInternal
}
