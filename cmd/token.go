// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/social-widgets/event-widget-service/pkg/instance"
)

var (
	secretKey   string
	instanceID  string
	permissions string
)

// tokenCmd mints a signed instance token for local testing, in place of the
// one the embedding platform would attach.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a development instance token",
	Run: func(cmd *cobra.Command, args []string) {
		if instanceID == "" {
			instanceID = uuid.NewString()
		}

		claims := &instance.Claims{
			InstanceID:  instanceID,
			Permissions: permissions,
			SignDate:    time.Now().UTC().Format(time.RFC3339),
		}

		token, err := instance.Sign(claims, []byte(secretKey))
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&secretKey, "secret-key", "", "Shared secret the platform signs tokens with")
	tokenCmd.Flags().StringVar(&instanceID, "instance-id", "", "Instance ID (random UUID when omitted)")
	tokenCmd.Flags().StringVar(&permissions, "permissions", instance.PermissionOwner, "Permissions claim")

	_ = tokenCmd.MarkFlagRequired("secret-key")
}
