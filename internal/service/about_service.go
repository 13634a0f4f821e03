package service

import (
	"strings"

	"personal-site/internal/domain"
)

// DefaultAboutImage es la imagen que sirve el front-end desde su carpeta pública.
const DefaultAboutImage = "/jennifer.jpg"

var defaultAboutInfo = []string{
	"Hello, my name is Jennifer Yu. I am currently a junior at NYU who is majoring in computer science " +
		"and minoring in web programming and applications. I chose to pursue in computer science because " +
		"I was interested in coding after taking a computer science class in high school. At that time, " +
		"I realized how a few simple lines of code can create something amazing and how problem-solving " +
		"was crucial to this field. Since I enjoy creating applications, I joined the Agile Software " +
		"Development & DevOps class. From this experience, I would like to gain new software development " +
		"skills and create a piece of work that I am proud of.",
	"Some hobbies that I have are traveling, cooking, playing games (both video and board games), and " +
		"listening to music. I particularly like traveling because it is fascinating to visit countries and " +
		"cities I have never been before while trying new food and experiencing different cultures. One " +
		"recent place I have visited is Vietnam (Hanoi), which had a completely different atmosphere to " +
		"advanced cities. I also enjoy cooking, playing games, and listening to music because they all help " +
		"me relax and keep my mind off any stress.",
	"One interesting fact about me is that I enjoy drinking bubble tea and milk tea a lot. I have probably " +
		"tried over 20 different shops since I am always tempted to try a different shop when it opens. One " +
		"of my favorite shops is called Teado, which is located in NYC Chinatown. My bubble tea addiction " +
		"explains why I also have a sweet tooth for any kind of desserts, from cake to ice cream.",
}

// AboutService sirve el contenido fijo de "about me". No toca el store.
type AboutService struct {
	about domain.About
}

func NewAboutService(image string) *AboutService {
	image = strings.TrimSpace(image)
	if image == "" {
		image = DefaultAboutImage
	}
	return &AboutService{
		about: domain.About{
			Info:  defaultAboutInfo,
			Image: image,
		},
	}
}

// Get devuelve una copia para que nadie modifique el contenido compartido.
func (s *AboutService) Get() domain.About {
	info := make([]string, len(s.about.Info))
	copy(info, s.about.Info)
	return domain.About{Info: info, Image: s.about.Image}
}
