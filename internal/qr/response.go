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
	"encoding/json"
	"net/http"
)

// ErrorBody is the machine-readable body of every error response.
type ErrorBody struct {
	Code    Status `json:"code"`
	Message string `json:"message"`
}

// Response is an EncodeResult mapped onto the external contract.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// HTTPStatus maps a status onto its response code.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusOK:
		return http.StatusOK
	case StatusInvalidInput:
		return http.StatusBadRequest
	case StatusCapacityExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Assemble builds the response for r. Errors never carry image bytes.
func Assemble(r EncodeResult) Response {
	if r.Status == StatusOK && len(r.Image) > 0 {
		return Response{StatusCode: http.StatusOK, ContentType: r.ContentType, Body: r.Image}
	}
	status := r.Status
	msg := r.Message()
	if status == StatusOK || status == "" {
		// An OK result without an image is a fault.
		status, msg = StatusInternal, "internal encoding error"
	}
	return ErrorResponse(status.HTTPStatus(), status, msg)
}

// ErrorResponse builds a JSON error response with an explicit code.
func ErrorResponse(httpStatus int, status Status, message string) Response {
	body, err := json.Marshal(ErrorBody{Code: status, Message: message})
	if err != nil {
		body = []byte(`{"code":"INTERNAL","message":"internal encoding error"}`)
	}
	return Response{StatusCode: httpStatus, ContentType: "application/json", Body: body}
}
