package main

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	defer viper.Reset()

	f, err := ioutil.TempFile("", "worker-*.yaml")
	assert.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString("redis:\n  conn: redis://127.0.0.1:6379\nmail:\n  port: 587\n")
	assert.NoError(t, err)
	f.Close()

	os.Setenv("FLUWATCH_MAIL_SERVER", "smtp.fluwatch.test")
	defer os.Unsetenv("FLUWATCH_MAIL_SERVER")

	loadConfig(f.Name())
	assert.Equal(t, "redis://127.0.0.1:6379", viper.GetString("redis.conn"))
	assert.Equal(t, 587, viper.GetInt("mail.port"))
	assert.Equal(t, "smtp.fluwatch.test", viper.GetString("mail.server"))
}
