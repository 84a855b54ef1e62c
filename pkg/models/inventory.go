/*
 * Copyright 2026 Edgekit Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

// Record is a single hardware-inventory field as published to the state
// store. Values are opaque to everything except the provider that decoded
// them; consumers key off Record.Key only.
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Well-known inventory field keys. Providers publish whatever subset of
// these their platform exposes; consumers must tolerate missing fields.
const (
	FieldProductName     = "product_name"
	FieldPartNumber      = "part_number"
	FieldSerialNumber    = "serial_number"
	FieldBaseMACAddress  = "base_mac_addr"
	FieldManufactureDate = "manufacture_date"
	FieldDeviceVersion   = "device_version"
	FieldLabelRevision   = "label_revision"
	FieldPlatformName    = "platform_name"
	FieldONIEVersion     = "onie_version"
	FieldNumMACs         = "num_macs"
	FieldManufacturer    = "manufacturer"
	FieldVendor          = "vendor"
	FieldDiagVersion     = "diag_version"
	FieldServiceTag      = "service_tag"
)
