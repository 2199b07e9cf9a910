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

// Package main runs the QR encoder as an AWS Lambda function behind an API
// Gateway proxy integration.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/qr"
	transport "github.com/wso2-open-operations/common-tools/operations/qr-encoder/internal/transport/lambda"
)

func main() {
	log := logger.InitLogger()
	cfg := config.LoadConfig()

	origin := "*"
	if len(cfg.CORSAllowedOrigins) > 0 {
		origin = cfg.CORSAllowedOrigins[0]
	}

	svc := qr.NewService(log, cfg.Limits())
	h := transport.NewHandler(svc, log, cfg.MaxBodySize, origin)
	log.Debug("Lambda handler initialized", "max_body_size", cfg.MaxBodySize, "allow_origin", origin)

	// The invocation deadline arrives on the handler context.
	lambda.Start(h.Handle)
}
