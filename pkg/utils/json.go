package utils

import (
	"bytes"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata um valor (ou um JSON já serializado) com indentação.
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("erro ao serializar json")
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		logrus.WithError(err).Warn("erro ao indentar json")
		return string(buffer)
	}

	return out.String()
}

// jsonIndent reserializa o buffer com indentação de dois espaços; o
// jsoniter só aceita espaços como indentação.
func jsonIndent(out *bytes.Buffer, buffer []byte) error {
	var v any
	if err := json.Unmarshal(buffer, &v); err != nil {
		return err
	}
	indented, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out.Write(indented)
	return nil
}
