package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/fool/consts"
	"github.com/ratel-online/fool/database"
	"github.com/ratel-online/fool/state"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c, consts.AuthTimeout)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	player := database.Connected(c, authInfo)
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)
	async.Async(func() {
		state.Run(player)
	})
	defer player.Offline()
	return player.Listening()
}

func loginAuth(c *network.Conn, timeout time.Duration) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}
