package files

import (
	"bytes"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"

	"github.com/klaybind/klaybind/internal/constants"
)

// IsValidABI accepts a file go-ethereum can parse as a contract ABI.
func IsValidABI(fl validator.FieldLevel) bool {
	data, ok := readField(fl, constants.MaxAbiFileSize)
	if !ok {
		return false
	}
	_, err := abi.JSON(bytes.NewReader(data))
	return err == nil
}

// IsValidBytecode accepts a non-empty hex file, with or without the 0x prefix.
func IsValidBytecode(fl validator.FieldLevel) bool {
	data, ok := readField(fl, constants.MaxBytecodeFileSize)
	if !ok {
		return false
	}
	code := strings.TrimSpace(string(data))
	code = strings.TrimPrefix(code, "0x")
	if code == "" || len(code)%2 != 0 {
		return false
	}
	_, err := hexutil.Decode("0x" + code)
	return err == nil
}

func readField(fl validator.FieldLevel, maxSize int64) ([]byte, bool) {
	path := stringField(fl)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() > maxSize {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}
