package prompt_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/llm"
	"github.com/nehal404/portfolio-chatbot-backend/pkg/prompt"
)

var _ = Describe("Builder", func() {
	var builder prompt.Builder

	BeforeEach(func() {
		builder = prompt.Builder{
			Persona:      "You are a portfolio assistant.",
			HistoryLimit: 10,
		}
	})

	Describe("FromMessage", func() {
		Context("with no history", func() {
			It("produces persona followed by the user message", func() {
				out := builder.FromMessage(nil, "Hello")

				Expect(out).To(HaveLen(2))
				Expect(out[0].Role).To(Equal(llm.RoleSystem))
				Expect(out[0].Content).To(Equal(builder.Persona))
				Expect(out[1].Role).To(Equal(llm.RoleUser))
				Expect(out[1].Content).To(Equal("Hello"))
			})
		})

		Context("with history", func() {
			It("places history between persona and the new message", func() {
				history := []llm.Message{
					{Role: llm.RoleUser, Content: "Hi"},
					{Role: llm.RoleAssistant, Content: "Hello there"},
				}
				out := builder.FromMessage(history, "What next?")

				Expect(out).To(HaveLen(4))
				Expect(out[1].Content).To(Equal("Hi"))
				Expect(out[2].Content).To(Equal("Hello there"))
				Expect(out[3].Content).To(Equal("What next?"))
			})

			It("keeps only the most recent turns when over the limit", func() {
				var history []llm.Message
				for i := 0; i < 11; i++ {
					history = append(history, llm.Message{
						Role:    llm.RoleUser,
						Content: fmt.Sprintf("turn %d", i),
					})
				}
				out := builder.FromMessage(history, "latest")

				// persona + 10 history turns + new message
				Expect(out).To(HaveLen(12))
				Expect(out[1].Content).To(Equal("turn 1"))
				for _, m := range out {
					Expect(m.Content).NotTo(Equal("turn 0"))
				}
			})

			It("normalizes unknown roles to assistant", func() {
				history := []llm.Message{
					{Role: "bot", Content: "generated"},
					{Role: llm.RoleSystem, Content: "sneaky prompt"},
				}
				out := builder.FromMessage(history, "q")

				Expect(out[1].Role).To(Equal(llm.RoleAssistant))
				Expect(out[2].Role).To(Equal(llm.RoleAssistant))
			})

			It("preserves the user role in history", func() {
				history := []llm.Message{{Role: llm.RoleUser, Content: "mine"}}
				out := builder.FromMessage(history, "q")

				Expect(out[1].Role).To(Equal(llm.RoleUser))
			})

			It("drops history turns with empty content", func() {
				history := []llm.Message{
					{Role: llm.RoleUser, Content: ""},
					{Role: llm.RoleAssistant, Content: "kept"},
				}
				out := builder.FromMessage(history, "q")

				Expect(out).To(HaveLen(3))
				Expect(out[1].Content).To(Equal("kept"))
			})

			It("drops history turns with whitespace-only content", func() {
				history := []llm.Message{
					{Role: llm.RoleUser, Content: "  \n\t"},
					{Role: llm.RoleAssistant, Content: "kept"},
				}
				out := builder.FromMessage(history, "q")

				Expect(out).To(HaveLen(3))
				Expect(out[1].Content).To(Equal("kept"))
			})
		})

		Context("without a persona", func() {
			It("omits the system turn", func() {
				out := prompt.Builder{HistoryLimit: 10}.FromMessage(nil, "Hello")

				Expect(out).To(HaveLen(1))
				Expect(out[0].Role).To(Equal(llm.RoleUser))
			})
		})
	})

	Describe("FromThread", func() {
		Context("when the thread opens with its own system turn", func() {
			It("forwards the thread verbatim", func() {
				thread := []llm.Message{
					{Role: llm.RoleSystem, Content: "custom persona"},
					{Role: llm.RoleUser, Content: "Hi"},
				}
				out := builder.FromThread(thread)

				Expect(out).To(Equal(thread))
			})

			It("does not inject the built-in persona", func() {
				thread := []llm.Message{
					{Role: llm.RoleSystem, Content: "custom persona"},
					{Role: llm.RoleUser, Content: "Hi"},
				}
				out := builder.FromThread(thread)

				for _, m := range out {
					Expect(m.Content).NotTo(Equal(builder.Persona))
				}
			})
		})

		Context("when the thread has no system turn", func() {
			It("prepends the persona", func() {
				thread := []llm.Message{{Role: llm.RoleUser, Content: "Hi"}}
				out := builder.FromThread(thread)

				Expect(out).To(HaveLen(2))
				Expect(out[0].Role).To(Equal(llm.RoleSystem))
				Expect(out[0].Content).To(Equal(builder.Persona))
			})

			It("normalizes roles other than user to assistant", func() {
				thread := []llm.Message{
					{Role: "tool", Content: "output"},
					{Role: llm.RoleUser, Content: "Hi"},
				}
				out := builder.FromThread(thread)

				Expect(out[1].Role).To(Equal(llm.RoleAssistant))
				Expect(out[2].Role).To(Equal(llm.RoleUser))
			})

			It("drops turns with whitespace-only content", func() {
				thread := []llm.Message{
					{Role: llm.RoleAssistant, Content: "   "},
					{Role: llm.RoleUser, Content: "Hi"},
				}
				out := builder.FromThread(thread)

				Expect(out).To(HaveLen(2))
				Expect(out[1].Content).To(Equal("Hi"))
			})
		})

		Context("with an empty thread", func() {
			It("returns nil", func() {
				Expect(builder.FromThread(nil)).To(BeNil())
			})
		})
	})

	Describe("HasUserTurn", func() {
		It("is true when a user message is present", func() {
			msgs := []llm.Message{
				{Role: llm.RoleSystem, Content: "p"},
				{Role: llm.RoleUser, Content: "q"},
			}
			Expect(prompt.HasUserTurn(msgs)).To(BeTrue())
		})

		It("is false for assistant-only conversations", func() {
			msgs := []llm.Message{
				{Role: llm.RoleSystem, Content: "p"},
				{Role: llm.RoleAssistant, Content: "a"},
			}
			Expect(prompt.HasUserTurn(msgs)).To(BeFalse())
		})
	})
})
