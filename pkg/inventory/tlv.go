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

package inventory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"net"
	"strconv"

	"github.com/edgekit/hwinvd/pkg/models"
)

// ONIE TlvInfo EEPROM format: an 11-byte header (8-byte signature, 1-byte
// version, 2-byte big-endian payload length) followed by type/length/value
// triplets, terminated by a CRC-32 TLV covering everything before it.
const (
	tlvInfoSignature = "TlvInfo\x00"
	tlvHeaderSize    = 11

	tlvCodeProductName     = 0x21
	tlvCodePartNumber      = 0x22
	tlvCodeSerialNumber    = 0x23
	tlvCodeBaseMAC         = 0x24
	tlvCodeManufactureDate = 0x25
	tlvCodeDeviceVersion   = 0x26
	tlvCodeLabelRevision   = 0x27
	tlvCodePlatformName    = 0x28
	tlvCodeONIEVersion     = 0x29
	tlvCodeNumMACs         = 0x2A
	tlvCodeManufacturer    = 0x2B
	tlvCodeVendor          = 0x2D
	tlvCodeDiagVersion     = 0x2E
	tlvCodeServiceTag      = 0x2F
	tlvCodeVendorExt       = 0xFD
	tlvCodeCRC32           = 0xFE
)

var (
	errTLVTooShort     = errors.New("eeprom blob shorter than TlvInfo header")
	errTLVBadSignature = errors.New("eeprom blob missing TlvInfo signature")
	errTLVTruncated    = errors.New("eeprom TLV runs past declared length")
	errTLVBadCRC       = errors.New("eeprom CRC-32 mismatch")
	errTLVMissingCRC   = errors.New("eeprom blob not terminated by CRC-32 TLV")
)

var tlvFieldKeys = map[byte]string{
	tlvCodeProductName:     models.FieldProductName,
	tlvCodePartNumber:      models.FieldPartNumber,
	tlvCodeSerialNumber:    models.FieldSerialNumber,
	tlvCodeManufactureDate: models.FieldManufactureDate,
	tlvCodeLabelRevision:   models.FieldLabelRevision,
	tlvCodePlatformName:    models.FieldPlatformName,
	tlvCodeONIEVersion:     models.FieldONIEVersion,
	tlvCodeManufacturer:    models.FieldManufacturer,
	tlvCodeVendor:          models.FieldVendor,
	tlvCodeDiagVersion:     models.FieldDiagVersion,
	tlvCodeServiceTag:      models.FieldServiceTag,
}

// decodeTLV parses a TlvInfo blob into inventory records. The CRC-32 TLV is
// verified and consumed, not published.
func decodeTLV(raw []byte) ([]models.Record, error) {
	if len(raw) < tlvHeaderSize {
		return nil, errTLVTooShort
	}

	if string(raw[:8]) != tlvInfoSignature {
		return nil, errTLVBadSignature
	}

	payloadLen := int(binary.BigEndian.Uint16(raw[9:11]))
	if tlvHeaderSize+payloadLen > len(raw) {
		return nil, errTLVTruncated
	}

	var records []models.Record

	offset := tlvHeaderSize
	end := tlvHeaderSize + payloadLen
	sawCRC := false

	for offset < end {
		if offset+2 > end {
			return nil, errTLVTruncated
		}

		code := raw[offset]
		length := int(raw[offset+1])
		valueStart := offset + 2

		if valueStart+length > end {
			return nil, errTLVTruncated
		}

		value := raw[valueStart : valueStart+length]

		if code == tlvCodeCRC32 {
			if length != 4 {
				return nil, fmt.Errorf("%w: length %d", errTLVBadCRC, length)
			}

			stored := binary.BigEndian.Uint32(value)
			computed := crc32.ChecksumIEEE(raw[:valueStart])

			if stored != computed {
				return nil, fmt.Errorf("%w: stored %08x computed %08x", errTLVBadCRC, stored, computed)
			}

			sawCRC = true

			break
		}

		if rec, ok := decodeTLVField(code, value); ok {
			records = append(records, rec)
		}

		offset = valueStart + length
	}

	if !sawCRC {
		return nil, errTLVMissingCRC
	}

	return records, nil
}

func decodeTLVField(code byte, value []byte) (models.Record, bool) {
	switch code {
	case tlvCodeBaseMAC:
		if len(value) != 6 {
			return models.Record{}, false
		}

		return models.Record{
			Key:   models.FieldBaseMACAddress,
			Value: net.HardwareAddr(value).String(),
		}, true

	case tlvCodeDeviceVersion:
		if len(value) != 1 {
			return models.Record{}, false
		}

		return models.Record{
			Key:   models.FieldDeviceVersion,
			Value: strconv.Itoa(int(value[0])),
		}, true

	case tlvCodeNumMACs:
		if len(value) != 2 {
			return models.Record{}, false
		}

		return models.Record{
			Key:   models.FieldNumMACs,
			Value: strconv.Itoa(int(binary.BigEndian.Uint16(value))),
		}, true

	case tlvCodeVendorExt:
		// Vendor extensions are platform-private; skip them.
		return models.Record{}, false

	default:
		key, ok := tlvFieldKeys[code]
		if !ok {
			return models.Record{}, false
		}

		return models.Record{Key: key, Value: string(value)}, true
	}
}
