// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const deliveriesTable = "deliveries"

var deliveryColumns = []string{
	"delivery_id",
	"trace_id",
	"msg_id",
	"to_user_name",
	"from_user_name",
	"msg_type",
	"event",
	"change_type",
	"kind",
	"outcome",
	"reason",
	"received_at",
}

// defaultListLimit caps ListDeliveries when the filter sets no limit.
const defaultListLimit = 100
