package service

import (
	"ecowave_backend/internal/config"
	"ecowave_backend/internal/util"
	"ecowave_backend/pkg/logger"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// TTS输出的固定音频参数：24kHz 单声道 16位PCM
const (
	podcastSampleRate = 24000
	podcastChannels   = 1
	podcastBitDepth   = 16
)

type PodcastService struct {
	AI      *AIService
	Storage *config.StorageConfig
}

func NewPodcastService(ai *AIService, storage *config.StorageConfig) *PodcastService {
	return &PodcastService{AI: ai, Storage: storage}
}

type PodcastResult struct {
	Topic       string `json:"topic"`
	AudioBase64 string `json:"audio"`
	MimeType    string `json:"mimeType"`
	SampleRate  int    `json:"sampleRate"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// GeneratePodcast 就给定话题合成一段播报音频。
// 返回裸PCM的base64给播放器；另外尽力转一份mp3供下载，转码失败不影响主流程。
func (s *PodcastService) GeneratePodcast(topic string) (*PodcastResult, error) {
	script := fmt.Sprintf("Narrate a short, engaging podcast segment (about 90 seconds) on the marine conservation topic: %s", topic)

	pcmBase64, err := s.AI.SynthesizeSpeech(script)
	if err != nil {
		return nil, err
	}

	result := &PodcastResult{
		Topic:       topic,
		AudioBase64: pcmBase64,
		MimeType:    "audio/pcm",
		SampleRate:  podcastSampleRate,
	}

	if url, err := s.exportMP3(pcmBase64); err == nil {
		result.DownloadURL = url
	} else {
		logger.Log.Warn("podcast mp3 export skipped", zap.Error(err))
	}

	return result, nil
}

// exportMP3 把PCM包成WAV再经ffmpeg转成mp3，落到本地上传目录
func (s *PodcastService) exportMP3(pcmBase64 string) (string, error) {
	pcm, err := base64.StdEncoding.DecodeString(pcmBase64)
	if err != nil {
		return "", err
	}

	wav := util.EncodeWAV(pcm, podcastSampleRate, podcastChannels, podcastBitDepth)

	dir := filepath.Join(s.Storage.LocalPath, "podcasts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	stamp := time.Now().UnixMilli()
	wavPath := filepath.Join(dir, fmt.Sprintf("podcast_%d.wav", stamp))
	mp3Path := filepath.Join(dir, fmt.Sprintf("podcast_%d.mp3", stamp))

	if err := os.WriteFile(wavPath, wav, 0644); err != nil {
		return "", err
	}
	defer os.Remove(wavPath)

	err = ffmpeg.Input(wavPath).
		Output(mp3Path, ffmpeg.KwArgs{"ar": podcastSampleRate, "ac": podcastChannels}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/podcasts/podcast_%d.mp3", stamp), nil
}
