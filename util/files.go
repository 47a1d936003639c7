package util

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MD5 returns the hex digest of everything read from r.
func MD5(r io.Reader) (string, error) {
	sum := md5.New()
	if _, err := io.Copy(sum, r); err != nil {
		return "", errors.Wrap(err, "md5")
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

// MD5File is MD5 over a file's contents, logged next to loaded resources.
func MD5File(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", errors.Wrap(err, "md5")
	}
	defer file.Close()
	return MD5(file)
}
